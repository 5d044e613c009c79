package response

import (
	"errors"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// HandleError maps domain and backend errors to JSON responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, session.ErrUnauthenticated),
		errors.Is(err, apiclient.ErrUnauthorized):
		Unauthorized(w, "Session expired")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, apiclient.ErrNotFound):
		NotFound(w, "Not found")
	case errors.Is(err, apiclient.ErrUnavailable):
		BadGateway(w, "HR server unavailable")
	default:
		// backend 4xx messages are meant for the user
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			BadRequest(w, apiErr.Message, nil)
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
