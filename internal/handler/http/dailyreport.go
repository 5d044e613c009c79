package http

import (
	"net/http"
	"strconv"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type DailyReportHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	RequestEdit(w http.ResponseWriter, r *http.Request)

	List(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	EditRequests(w http.ResponseWriter, r *http.Request)
	DecideEditRequest(w http.ResponseWriter, r *http.Request)
}

type DailyReportHandlerImpl struct {
	pages
	dailyReportService dailyreport.DailyReportService
}

type dailyReportData struct {
	Reports      []dailyreport.DailyReport
	Settings     dailyreport.Settings
	EditRequests []dailyreport.EditRequest
	Today        string
}

type editRequestsData struct {
	Requests []dailyreport.EditRequest
}

// load fetches reports and settings together; withEdits adds the caller's edit requests.
func (h *DailyReportHandlerImpl) load(r *http.Request, withEdits bool) (dailyReportData, error) {
	data := dailyReportData{Today: today()}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		reports, err := h.dailyReportService.ListDailyReports(ctx)
		data.Reports = reports
		return err
	})
	g.Go(func() error {
		settings, err := h.dailyReportService.GetSettings(ctx)
		data.Settings = settings
		return err
	})
	if withEdits {
		g.Go(func() error {
			edits, err := h.dailyReportService.ListEditRequests(ctx)
			data.EditRequests = edits
			return err
		})
	}
	return data, g.Wait()
}

// Mine handles GET /daily-report
func (h *DailyReportHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r, true)
	h.show(w, r, view.Page{Name: "daily_report", Title: "nav.daily_report", Data: data}, err)
}

// Submit handles POST /daily-report
func (h *DailyReportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, "SubmitDailyReport", err, "/daily-report")
		return
	}
	attachment, err := storage.FormFile(r, "attachment", storage.AttachmentOptions)
	if err != nil {
		h.fail(w, r, "SubmitDailyReport", err, "/daily-report")
		return
	}

	req := dailyreport.CreateDailyReportRequest{
		Date:       r.PostFormValue("date"),
		Content:    r.PostFormValue("content"),
		Attachment: attachment,
	}
	if _, err := h.dailyReportService.SubmitDailyReport(r.Context(), req); err != nil {
		h.fail(w, r, "SubmitDailyReport", err, "/daily-report")
		return
	}
	h.done(w, r, "flash.report_submitted", "/daily-report")
}

// RequestEdit handles POST /daily-report/{id}/edit-requests
func (h *DailyReportHandlerImpl) RequestEdit(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, "RequestEdit", err, "/daily-report")
		return
	}
	attachment, err := storage.FormFile(r, "newAttachment", storage.AttachmentOptions)
	if err != nil {
		h.fail(w, r, "RequestEdit", err, "/daily-report")
		return
	}

	req := dailyreport.CreateEditRequest{
		DailyReportID: chi.URLParam(r, "id"),
		NewContent:    r.PostFormValue("newContent"),
		NewAttachment: attachment,
		Reason:        r.PostFormValue("reason"),
	}
	if _, err := h.dailyReportService.RequestEdit(r.Context(), req); err != nil {
		h.fail(w, r, "RequestEdit", err, "/daily-report")
		return
	}
	h.done(w, r, "flash.edit_request_submitted", "/daily-report")
}

// List handles GET /admin/daily-report
func (h *DailyReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r, false)
	h.show(w, r, view.Page{Name: "admin_daily_report", Title: "nav.daily_report", Data: data}, err)
}

// UpdateSettings handles POST /admin/daily-report/settings
func (h *DailyReportHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/daily-report"
	if err := parseForm(r); err != nil {
		h.fail(w, r, "UpdateSettings", err, back)
		return
	}
	// unchecked boxes are not submitted
	enabled, _ := strconv.ParseBool(r.PostFormValue("enabled"))

	req := dailyreport.UpdateSettingsRequest{
		Enabled:  enabled,
		Deadline: r.PostFormValue("deadline"),
	}
	if _, err := h.dailyReportService.UpdateSettings(r.Context(), req); err != nil {
		h.fail(w, r, "UpdateSettings", err, back)
		return
	}
	h.done(w, r, "flash.settings_saved", back)
}

// EditRequests handles GET /admin/daily-report-edit-requests
func (h *DailyReportHandlerImpl) EditRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.dailyReportService.ListEditRequests(r.Context())
	h.show(w, r, view.Page{
		Name:  "edit_requests",
		Title: "nav.edit_requests",
		Data:  editRequestsData{Requests: requests},
	}, err)
}

// DecideEditRequest handles POST /admin/daily-report-edit-requests/{id}/decision
func (h *DailyReportHandlerImpl) DecideEditRequest(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/daily-report-edit-requests"
	if err := parseForm(r); err != nil {
		h.fail(w, r, "DecideEditRequest", err, back)
		return
	}
	decision, current, err := decisionForm(r)
	if err != nil {
		h.fail(w, r, "DecideEditRequest", err, back)
		return
	}

	req := dailyreport.DecideEditRequest{
		ID:       chi.URLParam(r, "id"),
		Decision: decision,
		Current:  current,
	}
	if err := h.dailyReportService.DecideEditRequest(r.Context(), req); err != nil {
		h.fail(w, r, "DecideEditRequest", err, back)
		return
	}
	h.done(w, r, decidedMessage(decision), back)
}

func NewDailyReportHandler(renderer *view.Renderer, sessions session.Service, dailyReportService dailyreport.DailyReportService) DailyReportHandler {
	return &DailyReportHandlerImpl{
		pages:              pages{view: renderer, sessions: sessions},
		dailyReportService: dailyReportService,
	}
}
