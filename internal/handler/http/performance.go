package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/performance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ForUser(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	pages
	performanceService performance.PerformanceService
}

type performanceData struct {
	Performance *performance.Performance
	Period      string
	Action      string
}

type adminPerformanceData struct {
	Rows   []performance.Performance
	Period string
}

// Mine handles GET /performance
func (h *performanceHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	filter := performance.Filter{Period: r.URL.Query().Get("period")}
	data := performanceData{Period: filter.Period, Action: "/performance"}

	result, err := h.performanceService.GetMine(r.Context(), filter)
	if err == nil {
		data.Performance = &result
	}
	h.show(w, r, view.Page{Name: "performance", Title: "nav.performance", Data: data}, err)
}

// List handles GET /admin/performance
func (h *performanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := performance.Filter{Period: r.URL.Query().Get("period")}
	rows, err := h.performanceService.List(r.Context(), filter)
	h.show(w, r, view.Page{
		Name:  "admin_performance",
		Title: "nav.performance",
		Data:  adminPerformanceData{Rows: rows, Period: filter.Period},
	}, err)
}

// ForUser handles GET /admin/performance/{userId}
func (h *performanceHandlerImpl) ForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	filter := performance.Filter{Period: r.URL.Query().Get("period")}
	data := performanceData{Period: filter.Period, Action: "/admin/performance/" + userID}

	result, err := h.performanceService.GetForUser(r.Context(), userID, filter)
	if err == nil {
		data.Performance = &result
	}
	h.show(w, r, view.Page{Name: "performance", Title: "nav.performance", Data: data}, err)
}

func NewPerformanceHandler(renderer *view.Renderer, sessions session.Service, performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		pages:              pages{view: renderer, sessions: sessions},
		performanceService: performanceService,
	}
}
