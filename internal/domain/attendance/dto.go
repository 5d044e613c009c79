package attendance

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// ListFilter narrows the admin attendance table.
type ListFilter struct {
	UserID    string
	StartDate string
	EndDate   string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateStatusRequest struct {
	AttendanceID    string        `json:"attendanceId" validate:"required"`
	CurrentStatus   CheckInStatus `json:"currentStatus,omitempty"`
	RequestedStatus CheckInStatus `json:"requestedStatus" validate:"required,oneof=early onTime almostLate late"`
	Reason          string        `json:"reason" validate:"required,max=1000"`
}

func (r *CreateStatusRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.CurrentStatus != "" && r.CurrentStatus == r.RequestedStatus {
		return validator.ValidationErrors{{Field: "requestedStatus", Message: "requestedStatus must differ from the current status"}}
	}
	return nil
}

// DecideStatusRequest approves or rejects a pending status change request.
type DecideStatusRequest struct {
	ID        string           `json:"-" validate:"required"`
	Decision  request.Decision `json:"-"`
	Current   request.Status   `json:"-"`
	Status    request.Status   `json:"status"`
	AdminNote string           `json:"adminNote,omitempty"`
}
