package user

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin Role = "admin" // Can approve requests and manage users
	RoleUser  Role = "user"  // Regular employee
)

// User is the profile returned by /api/users and /api/users/me.
type User struct {
	ID             common.ID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	Position       string          `json:"position,omitempty"`
	Department     string          `json:"department,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	JoinDate       string          `json:"joinDate,omitempty"`
	Salary         decimal.Decimal `json:"salary"`
	LeaveQuota     int             `json:"leaveQuota"`
	UsedLeaveQuota int             `json:"usedLeaveQuota"`
	Photo          string          `json:"photo,omitempty"`
}

// Summary is the embedded user shape on attendance, leave and report rows.
type Summary struct {
	ID         common.ID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Position   string    `json:"position,omitempty"`
	Department string    `json:"department,omitempty"`
}

// IsAdmin checks if user can see the admin views
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RemainingQuota is leaveQuota minus usedLeaveQuota. It can be negative when
// the backend has over-booked leave.
func (u *User) RemainingQuota() int {
	return u.LeaveQuota - u.UsedLeaveQuota
}
