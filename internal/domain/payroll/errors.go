package payroll

import "errors"

var (
	ErrPayrollSettingNotFound = errors.New("payroll setting not found")
	ErrInvalidPeriod          = errors.New("invalid payroll period")
	ErrInvalidAmount          = errors.New("invalid amount")
)
