package report

import "errors"

var (
	ErrUnknownReport    = errors.New("unknown report")
	ErrInvalidDateRange = errors.New("end date must be after start date")
)
