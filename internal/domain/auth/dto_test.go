package auth

import (
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "  hr@hexa.co.id ", Password: "secret"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "hr@hexa.co.id", req.Email)

	empty := LoginRequest{}
	var errs validator.ValidationErrors
	require.ErrorAs(t, empty.Validate(), &errs)
	assert.Equal(t, "email is required", errs.ToMap()["email"])
	assert.Equal(t, "password is required", errs.ToMap()["password"])

	bad := LoginRequest{Email: "hr-at-hexa", Password: "x"}
	require.ErrorAs(t, bad.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "email")
}
