package flash

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPop(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, Flash{Kind: KindSuccess, Message: "Tersimpan."})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	rec2 := httptest.NewRecorder()
	f := Pop(rec2, req)
	require.NotNil(t, f)
	assert.Equal(t, "Tersimpan.", f.Message)

	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)

	assert.Nil(t, Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestFromError(t *testing.T) {
	require.NoError(t, i18n.Init("id"))
	ctx := i18n.WithLocale(context.Background(), "en")

	f := FromError(ctx, fmt.Errorf("create: %w", leave.ErrQuotaExhausted))
	assert.Equal(t, "Your annual leave (Cuti) quota is used up.", f.Message)
	assert.Equal(t, KindError, f.Kind)

	f = FromError(ctx, &apiclient.APIError{StatusCode: 400, Message: "Tanggal sudah diajukan"})
	assert.Equal(t, "Tanggal sudah diajukan", f.Message)

	f = FromError(ctx, &apiclient.APIError{StatusCode: 503, Message: "Service Unavailable"})
	assert.Equal(t, "The HR server cannot be reached right now.", f.Message)

	f = FromError(ctx, validator.ValidationErrors{{Field: "reason", Message: "reason is required"}})
	assert.Equal(t, "reason is required", f.Fields["reason"])

	f = FromError(ctx, fmt.Errorf("boom"))
	assert.Equal(t, "Something went wrong. Please try again.", f.Message)
}
