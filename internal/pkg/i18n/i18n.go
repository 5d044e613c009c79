package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	matcher       language.Matcher
	supported     []string
	defaultLocale = "id"
)

type ctxKey struct{}

// Init loads all locale files and sets the default locale.
func Init(defLocale string) error {
	if defLocale != "" {
		defaultLocale = defLocale
	}

	bundle = i18n.NewBundle(language.Indonesian)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("i18n: read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
	}

	tags := bundle.LanguageTags()
	supported = make([]string, len(tags))
	for i, tag := range tags {
		supported[i] = tag.String()
	}
	matcher = language.NewMatcher(tags)

	slog.Info("i18n: locale files loaded", "count", len(entries), "default", defaultLocale)
	return nil
}

// WithLocale returns a new context carrying the given locale string (e.g. "id", "en").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext extracts the locale from the context.
// Returns the configured default locale if not set.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return defaultLocale
}

// Match picks the best supported locale for an Accept-Language header.
func Match(acceptLanguage string) string {
	if matcher == nil || acceptLanguage == "" {
		return defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return defaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultLocale
	}
	return supported[index]
}

// T translates a message ID using the locale from the context.
// Optional templateData provides values for template placeholders.
func T(ctx context.Context, messageID string, templateData ...map[string]any) string {
	if bundle == nil {
		return messageID
	}
	lang := LocaleFromContext(ctx)
	l := i18n.NewLocalizer(bundle, lang, defaultLocale)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}
