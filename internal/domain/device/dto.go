package device

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

func (c *Config) Validate() error {
	return validator.Struct(c)
}

type RegisterPalmRequest struct {
	UserID   string `json:"userId" validate:"required"`
	PersonID string `json:"personId" validate:"required"`
}

func (r *RegisterPalmRequest) Validate() error {
	return validator.Struct(r)
}
