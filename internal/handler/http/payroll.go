package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/payroll"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type PayrollHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)

	List(w http.ResponseWriter, r *http.Request)
	UpdateSetting(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	pages
	payrollService payroll.PayrollService
	userService    user.UserService
}

type payrollData struct {
	Payrolls []payroll.Payroll
}

type adminPayrollData struct {
	Payrolls    []payroll.Payroll
	Settings    []payroll.Setting
	Users       []user.User
	Calculation *payroll.Calculation
	Period      string
}

var settingFields = []string{
	"baseSalary", "lateDeduction", "earlyLeaveDeduction", "breakLateDeduction",
	"absentDeduction", "bonus", "allowance",
}

// Mine handles GET /payroll
func (h *PayrollHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	payrolls, err := h.payrollService.GetMyPayrolls(r.Context())
	h.show(w, r, view.Page{Name: "payroll", Title: "nav.payroll", Data: payrollData{Payrolls: payrolls}}, err)
}

func (h *PayrollHandlerImpl) load(r *http.Request) (adminPayrollData, error) {
	data := adminPayrollData{Period: thisMonth()}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		payrolls, err := h.payrollService.ListPayrolls(ctx)
		data.Payrolls = payrolls
		return err
	})
	g.Go(func() error {
		settings, err := h.payrollService.ListSettings(ctx)
		data.Settings = settings
		return err
	})
	g.Go(func() error {
		users, err := h.userService.List(ctx)
		data.Users = users
		return err
	})
	return data, g.Wait()
}

// List handles GET /admin/payroll
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r)
	h.show(w, r, view.Page{Name: "admin_payroll", Title: "nav.payroll", Data: data}, err)
}

// UpdateSetting handles POST /admin/payroll/settings/{userId}
func (h *PayrollHandlerImpl) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/payroll"
	if err := parseForm(r); err != nil {
		h.fail(w, r, "UpdateSetting", err, back)
		return
	}
	amounts, err := formDecimals(r, settingFields...)
	if err != nil {
		h.fail(w, r, "UpdateSetting", err, back)
		return
	}

	req := payroll.UpdateSettingRequest{
		UserID:              chi.URLParam(r, "userId"),
		BaseSalary:          amounts["baseSalary"],
		LateDeduction:       amounts["lateDeduction"],
		EarlyLeaveDeduction: amounts["earlyLeaveDeduction"],
		BreakLateDeduction:  amounts["breakLateDeduction"],
		AbsentDeduction:     amounts["absentDeduction"],
		Bonus:               amounts["bonus"],
		Allowance:           amounts["allowance"],
	}
	if _, err := h.payrollService.UpdateSetting(r.Context(), req); err != nil {
		h.fail(w, r, "UpdateSetting", err, back)
		return
	}
	h.done(w, r, "flash.settings_saved", back)
}

// Calculate handles POST /admin/payroll/calculate. The "generate" button
// stores the result as a history record; "calculate" only previews it.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/payroll"
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		h.fail(w, r, "CalculatePayroll", err, back)
		return
	}
	userID, period := r.PostFormValue("userId"), r.PostFormValue("period")

	if r.PostFormValue("action") == "generate" {
		if _, err := h.payrollService.Generate(ctx, payroll.GenerateRequest{UserID: userID, Period: period}); err != nil {
			h.fail(w, r, "GeneratePayroll", err, back)
			return
		}
		h.done(w, r, "flash.payroll_generated", back)
		return
	}

	calc, err := h.payrollService.Calculate(ctx, payroll.CalculateRequest{UserID: userID, Period: period})
	if err != nil {
		h.fail(w, r, "CalculatePayroll", err, back)
		return
	}

	data, err := h.load(r)
	data.Calculation = &calc
	data.Period = period
	h.show(w, r, view.Page{Name: "admin_payroll", Title: "nav.payroll", Data: data}, err)
}

func NewPayrollHandler(renderer *view.Renderer, sessions session.Service, payrollService payroll.PayrollService, userService user.UserService) PayrollHandler {
	return &PayrollHandlerImpl{
		pages:          pages{view: renderer, sessions: sessions},
		payrollService: payrollService,
		userService:    userService,
	}
}
