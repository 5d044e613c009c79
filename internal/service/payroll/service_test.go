package payroll

import (
	"context"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	calls int
}

func (f *fakeRepo) ListMyPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	return []payroll.Payroll{{Period: "2025-01"}, {Period: "2025-03"}, {Period: "2025-02"}}, nil
}

func (f *fakeRepo) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	return nil, nil
}

func (f *fakeRepo) GeneratePayroll(ctx context.Context, req payroll.GenerateRequest) (payroll.Payroll, error) {
	f.calls++
	return payroll.Payroll{Period: req.Period, Status: payroll.StatusDraft}, nil
}

func (f *fakeRepo) ListPayrollSettings(ctx context.Context) ([]payroll.Setting, error) {
	return nil, nil
}

func (f *fakeRepo) GetPayrollSetting(ctx context.Context, userID string) (payroll.Setting, error) {
	f.calls++
	return payroll.Setting{}, nil
}

func (f *fakeRepo) UpdatePayrollSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.Setting, error) {
	f.calls++
	return payroll.Setting{BaseSalary: req.BaseSalary}, nil
}

func (f *fakeRepo) CalculatePayroll(ctx context.Context, req payroll.CalculateRequest) (payroll.Calculation, error) {
	f.calls++
	return payroll.Calculation{
		BaseSalary:      decimal.NewFromInt(5000000),
		TotalBonus:      decimal.NewFromInt(500000),
		TotalDeductions: decimal.NewFromInt(125000),
		NetSalary:       decimal.NewFromInt(5375000),
	}, nil
}

func TestGetMyPayrolls_LatestFirst(t *testing.T) {
	svc := NewPayrollService(&fakeRepo{})
	list, err := svc.GetMyPayrolls(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-03", list[0].Period)
}

func TestValidationRunsBeforeBackend(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewPayrollService(repo)
	ctx := context.Background()

	_, err := svc.Calculate(ctx, payroll.CalculateRequest{UserID: "1", Period: "2025-13"})
	assert.Error(t, err)
	_, err = svc.Generate(ctx, payroll.GenerateRequest{Period: "2025-01"})
	assert.Error(t, err)
	_, err = svc.UpdateSetting(ctx, payroll.UpdateSettingRequest{UserID: "1", Bonus: decimal.NewFromInt(-1)})
	assert.Error(t, err)
	_, err = svc.GetSetting(ctx, "")
	assert.ErrorIs(t, err, payroll.ErrPayrollSettingNotFound)
	assert.Zero(t, repo.calls)

	calc, err := svc.Calculate(ctx, payroll.CalculateRequest{UserID: "1", Period: "2025-01"})
	require.NoError(t, err)
	assert.True(t, calc.Consistent())
	assert.Equal(t, 1, repo.calls)
}
