package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "hexa_flash"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    Kind              `json:"k"`
	Message string            `json:"m"`
	Fields  map[string]string `json:"f,omitempty"`
}

// Set stores f for the next request. The cookie is dropped by Pop.
func Set(w http.ResponseWriter, f Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Pop returns the pending flash, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}
