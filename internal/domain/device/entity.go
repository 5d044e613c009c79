package device

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
)

// Config holds the palm-device middleware credentials for a session.
type Config struct {
	BaseURL  string `json:"baseUrl" validate:"required,url"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	DeviceSN string `json:"deviceSn" validate:"required"`
}

func (c Config) IsZero() bool {
	return c.BaseURL == "" && c.Username == "" && c.DeviceSN == ""
}

// Masked hides the password for display.
func (c Config) Masked() Config {
	if c.Password != "" {
		c.Password = "********"
	}
	return c
}

type Status struct {
	Online      bool       `json:"online"`
	DeviceSN    string     `json:"deviceSn"`
	Firmware    string     `json:"firmware,omitempty"`
	PersonCount int        `json:"personCount"`
	LastSync    *time.Time `json:"lastSync,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// Person is an identity enrolled on the device.
type Person struct {
	PersonID       string    `json:"personId"`
	Name           string    `json:"name"`
	UserID         common.ID `json:"userId,omitempty"`
	PalmRegistered bool      `json:"palmRegistered"`
}

type SyncResult struct {
	Synced  int    `json:"synced"`
	Failed  int    `json:"failed"`
	Message string `json:"message,omitempty"`
}
