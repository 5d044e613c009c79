package performance

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// Filter selects the month; an empty period means the backend's current month.
type Filter struct {
	Period string
}

func (f *Filter) Validate() error {
	if f.Period != "" && !validator.IsValidPeriod(f.Period) {
		return validator.ValidationErrors{{Field: "period", Message: "period must be a period in YYYY-MM format"}}
	}
	return nil
}
