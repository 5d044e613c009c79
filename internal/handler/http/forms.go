package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// maxFormMemory bounds multipart parsing; attachments are capped lower by storage.
const maxFormMemory = 8 << 20

// parseForm handles both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// decisionForm reads the approve/reject button and the status the row had
// when the page was rendered.
func decisionForm(r *http.Request) (request.Decision, request.Status, error) {
	decision, err := request.ParseDecision(r.PostFormValue("decision"))
	if err != nil {
		return "", "", err
	}
	return decision, request.Status(r.PostFormValue("current")), nil
}

// formDecimals parses money inputs. Empty inputs are zero.
func formDecimals(r *http.Request, fields ...string) (map[string]decimal.Decimal, error) {
	values := make(map[string]decimal.Decimal, len(fields))
	var errs validator.ValidationErrors
	for _, field := range fields {
		raw := strings.TrimSpace(r.PostFormValue(field))
		if raw == "" {
			values[field] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(normalizeAmount(raw))
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be a number"})
			continue
		}
		values[field] = d
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// normalizeAmount rewrites Indonesian notation ("5.500.000", "1.500,50") to
// plain decimal. A comma is the decimal separator; dots followed by exactly
// three digits group thousands. Anything else keeps its dot as a decimal point.
func normalizeAmount(raw string) string {
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		return strings.Replace(raw, ",", ".", 1)
	}
	groups := strings.Split(raw, ".")
	if len(groups) == 1 {
		return raw
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return raw
		}
	}
	return strings.Join(groups, "")
}

// formInt returns nil for an empty input.
func formInt(r *http.Request, field string) (*int, error) {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: field, Message: field + " must be a whole number"}}
	}
	return &n, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func thisMonth() string {
	return time.Now().Format("2006-01")
}

func decidedMessage(d request.Decision) string {
	if d == request.DecisionApprove {
		return "flash.request_approved"
	}
	return "flash.request_rejected"
}
