package flash

import (
	"context"
	"errors"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/storage"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// messages maps local sentinel errors to their i18n message ids.
var messages = []struct {
	err error
	id  string
}{
	{leave.ErrQuotaExhausted, "error.quota_exhausted"},
	{leave.ErrInvalidDateRange, "error.invalid_date_range"},
	{leave.ErrCancelNotAllowed, "error.cancel_not_allowed"},
	{report.ErrInvalidDateRange, "error.invalid_date_range"},
	{report.ErrUnknownReport, "error.unknown_report"},
	{request.ErrNotActionable, "error.not_actionable"},
	{request.ErrInvalidDecision, "error.invalid_decision"},
	{dailyreport.ErrReportingDisabled, "error.reporting_disabled"},
	{device.ErrNotConfigured, "error.device_not_configured"},
	{storage.ErrFileTooLarge, "error.attachment"},
	{storage.ErrUnsupportedType, "error.attachment"},
	{user.ErrAdminAccessRequired, "error.forbidden"},
	{user.ErrCannotDeleteSelf, "error.delete_self"},
	{auth.ErrInvalidCredentials, "error.invalid_credentials"},
	{session.ErrUnauthenticated, "error.session_expired"},
	{apiclient.ErrUnauthorized, "error.session_expired"},
	{apiclient.ErrUnavailable, "error.unavailable"},
}

// FromError builds the error flash for err. Backend messages are shown
// verbatim; anything unrecognised gets the generic fallback.
func FromError(ctx context.Context, err error) Flash {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Flash{Kind: KindError, Message: i18n.T(ctx, "error.validation"), Fields: validationErrs.ToMap()}
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return Flash{Kind: KindError, Message: i18n.T(ctx, m.id)}
		}
	}

	if msg, ok := apiclient.Message(err); ok {
		return Flash{Kind: KindError, Message: msg}
	}
	return Flash{Kind: KindError, Message: i18n.T(ctx, "error.generic")}
}

// Success builds a success flash from an i18n message id.
func Success(ctx context.Context, messageID string, data ...map[string]any) Flash {
	return Flash{Kind: KindSuccess, Message: i18n.T(ctx, messageID, data...)}
}
