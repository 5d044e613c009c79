package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Period validation (YYYY-MM)
func IsValidPeriod(period string) bool {
	_, err := time.Parse("2006-01", period)
	return err == nil
}

var phoneRegex = regexp.MustCompile(`^(\+62|62|0)8[0-9]{7,11}$`)

// IsValidPhoneNumber accepts Indonesian mobile numbers (08.., 628.., +628..),
// ignoring spaces and dashes.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phoneRegex.MatchString(phone)
}

var (
	engine     *playground.Validate
	engineOnce sync.Once
)

func instance() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New(playground.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = engine.RegisterValidation("yyyymmdd", func(fl playground.FieldLevel) bool {
			_, ok := IsValidDate(fl.Field().String())
			return ok
		})
		_ = engine.RegisterValidation("period", func(fl playground.FieldLevel) bool {
			return IsValidPeriod(fl.Field().String())
		})
		_ = engine.RegisterValidation("idphone", func(fl playground.FieldLevel) bool {
			return IsValidPhoneNumber(fl.Field().String())
		})
	})
	return engine
}

// Struct validates s against its `validate` tags and returns ValidationErrors keyed by json field name.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return errs
}

func message(fe playground.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "yyyymmdd":
		return field + " must be a date in YYYY-MM-DD format"
	case "period":
		return field + " must be a period in YYYY-MM format"
	case "idphone":
		return field + " must be a valid phone number"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must not exceed " + fe.Param() + " characters"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
