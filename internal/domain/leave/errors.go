package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrQuotaExhausted       = errors.New("leave quota exhausted")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrCancelNotAllowed     = errors.New("only pending leave requests can be cancelled")
)
