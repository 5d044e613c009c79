package payroll

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateSettingRequest struct {
	UserID              string          `json:"-" validate:"required"`
	BaseSalary          decimal.Decimal `json:"baseSalary"`
	LateDeduction       decimal.Decimal `json:"lateDeduction"`
	EarlyLeaveDeduction decimal.Decimal `json:"earlyLeaveDeduction"`
	BreakLateDeduction  decimal.Decimal `json:"breakLateDeduction"`
	AbsentDeduction     decimal.Decimal `json:"absentDeduction"`
	Bonus               decimal.Decimal `json:"bonus"`
	Allowance           decimal.Decimal `json:"allowance"`
}

func (r *UpdateSettingRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"baseSalary", r.BaseSalary},
		{"lateDeduction", r.LateDeduction},
		{"earlyLeaveDeduction", r.EarlyLeaveDeduction},
		{"breakLateDeduction", r.BreakLateDeduction},
		{"absentDeduction", r.AbsentDeduction},
		{"bonus", r.Bonus},
		{"allowance", r.Allowance},
	}

	var errs validator.ValidationErrors
	for _, a := range amounts {
		if a.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: a.field + " must not be negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateRequest struct {
	UserID string `json:"userId" validate:"required"`
	Period string `json:"period" validate:"required,period"`
}

func (r *CalculateRequest) Validate() error {
	return validator.Struct(r)
}

// GenerateRequest stores a calculated payroll as a history record.
type GenerateRequest struct {
	UserID string `json:"userId" validate:"required"`
	Period string `json:"period" validate:"required,period"`
}

func (r *GenerateRequest) Validate() error {
	return validator.Struct(r)
}
