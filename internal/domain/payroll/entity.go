package payroll

import (
	"strings"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Setting - per-employee deduction and bonus configuration
type Setting struct {
	UserID              common.ID       `json:"userId"`
	BaseSalary          decimal.Decimal `json:"baseSalary"`
	LateDeduction       decimal.Decimal `json:"lateDeduction"`
	EarlyLeaveDeduction decimal.Decimal `json:"earlyLeaveDeduction"`
	BreakLateDeduction  decimal.Decimal `json:"breakLateDeduction"`
	AbsentDeduction     decimal.Decimal `json:"absentDeduction"`
	Bonus               decimal.Decimal `json:"bonus"`
	Allowance           decimal.Decimal `json:"allowance"`

	User *user.Summary `json:"user,omitempty"`
}

// DetailType enum
type DetailType string

const (
	DetailTypeDeduction DetailType = "deduction"
	DetailTypeBonus     DetailType = "bonus"
	DetailTypeAllowance DetailType = "allowance"
)

type Detail struct {
	Label  string          `json:"label"`
	Type   DetailType      `json:"type"`
	Count  int             `json:"count,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Calculation - server computed payslip preview for one period
type Calculation struct {
	UserID          common.ID       `json:"userId"`
	Period          string          `json:"period"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TotalBonus      decimal.Decimal `json:"totalBonus"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	Details         []Detail        `json:"details"`
}

// Consistent reports whether NetSalary equals base + bonus - deductions.
func (c Calculation) Consistent() bool {
	return c.BaseSalary.Add(c.TotalBonus).Sub(c.TotalDeductions).Equal(c.NetSalary)
}

// Status enum
type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)

// Payroll - generated payroll history record
type Payroll struct {
	ID        common.ID       `json:"id"`
	UserID    common.ID       `json:"userId"`
	Period    string          `json:"period"`
	NetSalary decimal.Decimal `json:"netSalary"`
	Status    Status          `json:"status"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`

	User *user.Summary `json:"user,omitempty"`
}

// FormatIDR renders an amount as Indonesian rupiah, e.g. "Rp 5.500.000".
func FormatIDR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole := amount.Round(0).StringFixed(0)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "Rp " + b.String()
}
