package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{payrollRepo: payrollRepo}
}

func latestPeriodFirst(list []payroll.Payroll) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Period > list[j].Period })
}

func (s *PayrollServiceImpl) GetMyPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	list, err := s.payrollRepo.ListMyPayrolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own payrolls: %w", err)
	}
	latestPeriodFirst(list)
	return list, nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	list, err := s.payrollRepo.ListPayrolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	latestPeriodFirst(list)
	return list, nil
}

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.Payroll, error) {
	if err := req.Validate(); err != nil {
		return payroll.Payroll{}, err
	}
	return s.payrollRepo.GeneratePayroll(ctx, req)
}

func (s *PayrollServiceImpl) ListSettings(ctx context.Context) ([]payroll.Setting, error) {
	return s.payrollRepo.ListPayrollSettings(ctx)
}

func (s *PayrollServiceImpl) GetSetting(ctx context.Context, userID string) (payroll.Setting, error) {
	if userID == "" {
		return payroll.Setting{}, payroll.ErrPayrollSettingNotFound
	}
	return s.payrollRepo.GetPayrollSetting(ctx, userID)
}

func (s *PayrollServiceImpl) UpdateSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.Setting, error) {
	if err := req.Validate(); err != nil {
		return payroll.Setting{}, err
	}
	return s.payrollRepo.UpdatePayrollSetting(ctx, req)
}

// Calculate returns the backend's preview. The numbers are shown as sent; an
// inconsistent total is only logged.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.Calculation, error) {
	if err := req.Validate(); err != nil {
		return payroll.Calculation{}, err
	}
	calc, err := s.payrollRepo.CalculatePayroll(ctx, req)
	if err != nil {
		return payroll.Calculation{}, err
	}
	if !calc.Consistent() {
		slog.Warn("payroll calculation does not add up",
			"user_id", req.UserID,
			"period", req.Period,
			"net_salary", calc.NetSalary.String(),
		)
	}
	return calc, nil
}
