package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized is returned for 401 and 403 responses. The session
	// holding the token must be cleared.
	ErrUnauthorized = errors.New("backend rejected the session token")
	ErrNotFound     = errors.New("backend resource not found")
	// ErrUnavailable wraps transport failures: refused connections, timeouts, bad gateways.
	ErrUnavailable = errors.New("backend unavailable")
)

// APIError is a non-2xx backend response. Message is the backend's own text
// and is meant to be shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadGateway || e.StatusCode == http.StatusServiceUnavailable || e.StatusCode == http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	return nil
}

// Message returns the backend's message carried by err, if any.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" && len(payload.Error) > 0 {
			apiErr.Message = errorText(payload.Error)
		}
	}

	if apiErr.Message == "" {
		if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
			apiErr.Message = text
		} else {
			apiErr.Message = http.StatusText(statusCode)
		}
	}
	return apiErr
}

// errorText reads {"error": "text"} and {"error": {"message": "text"}}.
func errorText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return nested.Message
	}
	return ""
}
