package payroll

import "context"

type PayrollService interface {
	GetMyPayrolls(ctx context.Context) ([]Payroll, error)
	ListPayrolls(ctx context.Context) ([]Payroll, error)
	Generate(ctx context.Context, req GenerateRequest) (Payroll, error)

	ListSettings(ctx context.Context) ([]Setting, error)
	GetSetting(ctx context.Context, userID string) (Setting, error)
	UpdateSetting(ctx context.Context, req UpdateSettingRequest) (Setting, error)
	Calculate(ctx context.Context, req CalculateRequest) (Calculation, error)
}
