package dailyreport

import (
	"regexp"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

type CreateDailyReportRequest struct {
	Date       string `json:"date" validate:"required,yyyymmdd"`
	Content    string `json:"content" validate:"required"`
	Attachment string `json:"attachment,omitempty"`
}

func (r *CreateDailyReportRequest) Validate() error {
	return validator.Struct(r)
}

var deadlineRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type UpdateSettingsRequest struct {
	Enabled  bool   `json:"enabled"`
	Deadline string `json:"deadline"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if !deadlineRegex.MatchString(r.Deadline) {
		return validator.ValidationErrors{{Field: "deadline", Message: "deadline must be in HH:MM format"}}
	}
	return nil
}

type CreateEditRequest struct {
	DailyReportID string `json:"dailyReportId" validate:"required"`
	NewContent    string `json:"newContent" validate:"required"`
	NewAttachment string `json:"newAttachment,omitempty"`
	Reason        string `json:"reason" validate:"required,max=1000"`
}

func (r *CreateEditRequest) Validate() error {
	return validator.Struct(r)
}

type DecideEditRequest struct {
	ID       string           `json:"-" validate:"required"`
	Decision request.Decision `json:"-"`
	Current  request.Status   `json:"-"`
	Status   request.Status   `json:"status"`
}
