package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/payroll"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/flash"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/viewmode"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// standalone pages render without the shell layout.
var standalone = map[string]bool{
	"login":     true,
	"switching": true,
}

// Layout is the shell around every guarded page.
type Layout struct {
	User      *user.User
	AdminView bool
	Nav       []viewmode.NavItem
	Badge     notification.Badge
	Pending   []notification.PendingItem
	Unread    int
	Path      string
}

// LayoutSource builds the shell for the current request.
type LayoutSource interface {
	Layout(r *http.Request) Layout
}

// Page is one render call. Title is an i18n message id.
type Page struct {
	Name   string
	Title  string
	Status int
	Data   any
	Flash  *flash.Flash
}

// pageData is what templates see as dot.
type pageData struct {
	Layout
	Title string
	Flash *flash.Flash
	Data  any

	ctx context.Context
}

// T translates id in the request locale. Extra args are key/value pairs of
// template data: {{$.T "leave.remaining" "Remaining" 2 "Total" 12}}.
func (p pageData) T(id string, args ...any) string {
	var data map[string]any
	if len(args) > 1 {
		data = make(map[string]any, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			data[fmt.Sprint(args[i])] = args[i+1]
		}
	}
	return i18n.T(p.ctx, id, data)
}

// FieldError returns the validation message of a form field, if any.
func (p pageData) FieldError(field string) string {
	if p.Flash == nil {
		return ""
	}
	return p.Flash.Fields[field]
}

func (p pageData) Locale() string {
	return i18n.LocaleFromContext(p.ctx)
}

type Renderer struct {
	pages  map[string]*template.Template
	layout LayoutSource
}

// New parses every page template against the shared layout. fileURL resolves
// backend file paths for <img> and download links.
func New(layout LayoutSource, fileURL func(string) string) (*Renderer, error) {
	funcs := template.FuncMap{
		"idr":      func(d decimal.Decimal) string { return payroll.FormatIDR(d) },
		"date":     formatTime("2006-01-02"),
		"time":     formatTime("15:04"),
		"datetime": formatTime("2006-01-02 15:04"),
		"file": func(path string) template.URL {
			return safeFileURL(fileURL(path))
		},
		"percent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, path := range names {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		if name == "layout" {
			continue
		}

		files := []string{path}
		if !standalone[name] {
			files = []string{"templates/layout.html", path}
		}
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, layout: layout}, nil
}

func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, page Page) {
	tmpl, ok := v.pages[page.Name]
	if !ok {
		slog.Error("unknown template", "name", page.Name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Title: page.Title,
		Flash: page.Flash,
		Data:  page.Data,
		ctx:   r.Context(),
	}
	if data.Flash == nil {
		data.Flash = flash.Pop(w, r)
	}

	entry := "layout"
	if standalone[page.Name] {
		entry = page.Name
	} else if v.layout != nil {
		data.Layout = v.layout.Layout(r)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		slog.Error("render template", "name", page.Name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := page.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formatTime(layout string) func(any) string {
	return func(v any) string {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return "-"
			}
			return t.Local().Format(layout)
		case *time.Time:
			if t == nil || t.IsZero() {
				return "-"
			}
			return t.Local().Format(layout)
		case string:
			if t == "" {
				return "-"
			}
			if len(t) > len(layout) && layout == "2006-01-02" {
				return t[:10]
			}
			return t
		}
		return "-"
	}
}

// safeFileURL lets backend file links and inline image or PDF data URLs
// through html/template's URL filter.
func safeFileURL(u string) template.URL {
	switch {
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"),
		strings.HasPrefix(u, "data:image/"), strings.HasPrefix(u, "data:application/pdf"):
		return template.URL(u)
	}
	return ""
}
