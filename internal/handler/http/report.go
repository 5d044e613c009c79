package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	pages
	reportService report.ReportService
}

type reportsData struct {
	Kinds []report.Kind
}

// Index handles GET /admin/reports
func (h *reportHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, view.Page{
		Name:  "reports",
		Title: "nav.reports",
		Data:  reportsData{Kinds: []report.Kind{report.KindAttendances, report.KindLeaves}},
	}, nil)
}

// Download handles GET /admin/reports/{kind}. The backend builds the CSV;
// it is streamed through because the browser has no bearer token.
func (h *reportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/reports"
	q := r.URL.Query()
	req := report.ExportRequest{
		Kind:      report.Kind(chi.URLParam(r, "kind")),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	file, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		h.fail(w, r, "ExportReport", err, back)
		return
	}
	defer file.Body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.Copy(w, file.Body); err != nil {
		slog.Error("ExportReport stream error", "kind", req.Kind, "error", err)
	}
}

func NewReportHandler(renderer *view.Renderer, sessions session.Service, reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		pages:         pages{view: renderer, sessions: sessions},
		reportService: reportService,
	}
}
