package dailyreport

import "errors"

var (
	ErrDailyReportNotFound = errors.New("daily report not found")
	ErrEditRequestNotFound = errors.New("daily report edit request not found")
	ErrReportingDisabled   = errors.New("daily reporting is disabled")
)
