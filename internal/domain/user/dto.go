package user

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Name       string          `json:"name" validate:"required,max=255"`
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required,min=8"`
	Role       Role            `json:"role" validate:"required,oneof=admin user"`
	Position   string          `json:"position,omitempty"`
	Department string          `json:"department,omitempty"`
	Phone      string          `json:"phone,omitempty" validate:"omitempty,idphone"`
	JoinDate   string          `json:"joinDate,omitempty" validate:"omitempty,yyyymmdd"`
	Salary     decimal.Decimal `json:"salary"`
	LeaveQuota int             `json:"leaveQuota" validate:"gte=0"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Salary.IsNegative() {
		return validator.ValidationErrors{{Field: "salary", Message: "salary must not be negative"}}
	}
	return nil
}

// UpdateUserRequest is sent by the admin edit form. Empty strings are omitted
// so the backend keeps the stored value.
type UpdateUserRequest struct {
	ID             string           `json:"-" validate:"required"`
	Name           string           `json:"name,omitempty" validate:"omitempty,max=255"`
	Email          string           `json:"email,omitempty" validate:"omitempty,email"`
	Password       string           `json:"password,omitempty" validate:"omitempty,min=8"`
	Role           Role             `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Position       string           `json:"position,omitempty"`
	Department     string           `json:"department,omitempty"`
	Phone          string           `json:"phone,omitempty" validate:"omitempty,idphone"`
	JoinDate       string           `json:"joinDate,omitempty" validate:"omitempty,yyyymmdd"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	LeaveQuota     *int             `json:"leaveQuota,omitempty" validate:"omitempty,gte=0"`
	UsedLeaveQuota *int             `json:"usedLeaveQuota,omitempty" validate:"omitempty,gte=0"`
	Photo          string           `json:"photo,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		return validator.ValidationErrors{{Field: "salary", Message: "salary must not be negative"}}
	}
	return nil
}

// UpdateProfileRequest is the self-service subset of UpdateUserRequest.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,idphone"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Photo    string `json:"photo,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validator.Struct(r)
}
