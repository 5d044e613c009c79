package leave

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	StartDate  string `json:"startDate" validate:"required,yyyymmdd"`
	EndDate    string `json:"endDate" validate:"required,yyyymmdd"`
	Reason     string `json:"reason" validate:"required,max=1000"`
	Type       Type   `json:"type" validate:"required,oneof=Izin Cuti"`
	Attachment string `json:"attachment,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// CheckQuota rejects a Cuti submission once the quota is used up. It runs
// before anything is sent to the backend.
func (r *CreateLeaveRequest) CheckQuota(q Quota) error {
	if r.Type.ConsumesQuota() && !q.CutiAllowed() {
		return ErrQuotaExhausted
	}
	return nil
}

type DecideLeaveRequest struct {
	ID       string           `json:"-" validate:"required"`
	Decision request.Decision `json:"-"`
	Current  request.Status   `json:"-"`
	Status   request.Status   `json:"status"`
}
