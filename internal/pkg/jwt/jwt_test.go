package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueParse(t *testing.T) {
	svc := NewJWTService("secret", "hexa_session", time.Hour, false)

	token, expiresAt, err := svc.Issue("abc-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	sid, exp, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sid)
	assert.WithinDuration(t, expiresAt, exp, time.Second)
}

func TestJWTService_NeedsRenewal(t *testing.T) {
	svc := NewJWTService("secret", "hexa_session", 2*time.Hour, false)

	assert.False(t, svc.NeedsRenewal(time.Now().Add(90*time.Minute)))
	assert.True(t, svc.NeedsRenewal(time.Now().Add(30*time.Minute)))
}

func TestJWTService_ParseRejects(t *testing.T) {
	svc := NewJWTService("secret", "hexa_session", time.Hour, false)
	other := NewJWTService("other-secret", "hexa_session", time.Hour, false)

	foreign, _, err := other.Issue("abc")
	require.NoError(t, err)
	_, _, err = svc.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, _, err = svc.Parse("")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, _, err = svc.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)

	expired := NewJWTService("secret", "hexa_session", -time.Hour, false)
	old, _, err := expired.Issue("abc")
	require.NoError(t, err)
	_, _, err = svc.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, wrongType, err := svc.JWTAuth().Encode(map[string]interface{}{"sid": "abc", "type": "access"})
	require.NoError(t, err)
	_, _, err = svc.Parse(wrongType)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTService_Cookies(t *testing.T) {
	svc := NewJWTService("secret", "hexa_session", time.Hour, true)

	c := svc.Cookie("tok", time.Now().Add(time.Hour))
	assert.Equal(t, "hexa_session", c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	gone := svc.ExpiredCookie()
	assert.Equal(t, -1, gone.MaxAge)
	assert.Empty(t, gone.Value)
	assert.Equal(t, http.SameSiteLaxMode, gone.SameSite)
}
