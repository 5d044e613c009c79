package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrStatusRequestNotFound = errors.New("attendance status request not found")
)
