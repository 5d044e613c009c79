package middleware

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
)

// Locale picks the page language from the "lang" cookie or Accept-Language.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Accept-Language")
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			header = c.Value
		}
		ctx := i18n.WithLocale(r.Context(), i18n.Match(header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecureHeaders sets the headers every HTML response carries.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
