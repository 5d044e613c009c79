package payroll

import "context"

// PayrollRepository - interface for /api/payroll and /api/payroll-settings
type PayrollRepository interface {
	ListMyPayrolls(ctx context.Context) ([]Payroll, error)
	ListPayrolls(ctx context.Context) ([]Payroll, error)
	GeneratePayroll(ctx context.Context, req GenerateRequest) (Payroll, error)

	ListPayrollSettings(ctx context.Context) ([]Setting, error)
	GetPayrollSetting(ctx context.Context, userID string) (Setting, error)
	UpdatePayrollSetting(ctx context.Context, req UpdateSettingRequest) (Setting, error)
	CalculatePayroll(ctx context.Context, req CalculateRequest) (Calculation, error)
}
