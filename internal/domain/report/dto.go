package report

import (
	"io"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// Kind of CSV export the backend generates.
type Kind string

const (
	KindAttendances Kind = "attendances"
	KindLeaves      Kind = "leaves"
)

func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindAttendances, KindLeaves:
		return Kind(raw), nil
	}
	return "", ErrUnknownReport
}

// Path is the backend endpoint serving the export.
func (k Kind) Path() string {
	return "/api/reports/" + string(k)
}

type ExportRequest struct {
	Kind      Kind
	StartDate string
	EndDate   string
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool
	if r.StartDate != "" {
		if start, startOK = validator.IsValidDate(r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if end, endOK = validator.IsValidDate(r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	if startOK && endOK && end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// File is a streamed export. Body must be closed by the consumer.
type File struct {
	Name        string
	ContentType string
	Body        io.ReadCloser
}

// DefaultName is used when the backend sends no Content-Disposition filename.
func (r *ExportRequest) DefaultName(now time.Time) string {
	return string(r.Kind) + "-" + now.Format("20060102") + ".csv"
}
