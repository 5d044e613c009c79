package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidSession = errors.New("invalid session cookie")

// Service signs the browser session cookie. The cookie only carries the
// session id; everything else stays server side.
type Service interface {
	Issue(sessionID string) (token string, expiresAt time.Time, err error)
	Parse(token string) (sessionID string, expiresAt time.Time, err error)
	// NeedsRenewal reports whether a cookie expiring at expiresAt is past
	// half of its lifetime.
	NeedsRenewal(expiresAt time.Time) bool
	Cookie(token string, expiresAt time.Time) *http.Cookie
	ExpiredCookie() *http.Cookie
	CookieName() string
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth  *jwtauth.JWTAuth
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewJWTService(secretKey, cookieName string, ttl time.Duration, secure bool) Service {
	return &JWTService{
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) CookieName() string {
	return j.cookieName
}

func (j *JWTService) Issue(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.ttl)
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sid":  sessionID,
		"type": "session",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) Parse(tokenString string) (string, time.Time, error) {
	if tokenString == "" {
		return "", time.Time{}, ErrInvalidSession
	}
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", time.Time{}, ErrInvalidSession
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "session" {
		return "", time.Time{}, ErrInvalidSession
	}

	sidVal, ok := token.Get("sid")
	if !ok {
		return "", time.Time{}, ErrInvalidSession
	}
	sid, ok := sidVal.(string)
	if !ok || sid == "" {
		return "", time.Time{}, ErrInvalidSession
	}
	return sid, token.Expiration(), nil
}

func (j *JWTService) NeedsRenewal(expiresAt time.Time) bool {
	return time.Until(expiresAt) < j.ttl/2
}

// Cookie is HttpOnly and SameSite=Lax: links from other sites keep the
// session while cross-site form posts arrive without it.
func (j *JWTService) Cookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
