package http

import (
	"log/slog"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/middleware"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups every page handler mounted by NewRouter.
type Handlers struct {
	Auth         AuthHandler
	Layout       LayoutHandler
	Dashboard    DashboardHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	DailyReport  DailyReportHandler
	Payroll      PayrollHandler
	Performance  PerformanceHandler
	User         UserHandler
	Notification NotificationHandler
	Report       ReportHandler
	Device       DeviceHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Debug          bool
}

func NewRouter(opts RouterOptions, jwtService jwt.Service, sessions middleware.Authenticator, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowCredentials: true,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			MaxAge:           300,
		}))
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  level,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Locale)
	r.Use(middleware.Session(jwtService))

	r.Get("/login", h.Auth.LoginPage)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	// Requires a logged in session
	r.Group(func(r chi.Router) {
		r.Use(middleware.Guard(sessions))

		r.Get("/", h.Dashboard.Show)
		r.Get("/events", h.Layout.Events)
		r.Post("/view-mode", h.Layout.ToggleViewMode)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.Mine)
			r.Post("/status-requests", h.Attendance.RequestStatusChange)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/", h.Leave.Mine)
			r.Post("/", h.Leave.Create)
			r.Post("/{id}/cancel", h.Leave.Cancel)
		})

		r.Route("/daily-report", func(r chi.Router) {
			r.Get("/", h.DailyReport.Mine)
			r.Post("/", h.DailyReport.Submit)
			r.Post("/{id}/edit-requests", h.DailyReport.RequestEdit)
		})

		r.Get("/payroll", h.Payroll.Mine)
		r.Get("/performance", h.Performance.Mine)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notification.List)
			r.Post("/refresh", h.Layout.RefreshNotifications)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.User.Profile)
			r.With(middleware.RequirePermission(user.PermissionEditOwnProfile)).Post("/", h.User.UpdateProfile)
		})

		// Admin only
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)

			r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/attendance", h.Attendance.List)

			r.Route("/attendance-requests", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceApprove))
				r.Get("/", h.Attendance.StatusRequests)
				r.Post("/{id}/decision", h.Attendance.DecideStatusRequest)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
				r.Get("/", h.Leave.List)
				r.Post("/{id}/decision", h.Leave.Decide)
			})

			r.Route("/daily-report", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDailyReportManage))
				r.Get("/", h.DailyReport.List)
				r.Post("/settings", h.DailyReport.UpdateSettings)
			})

			r.Route("/daily-report-edit-requests", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDailyReportApprove))
				r.Get("/", h.DailyReport.EditRequests)
				r.Post("/{id}/decision", h.DailyReport.DecideEditRequest)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
				r.Get("/", h.Payroll.List)
				r.Post("/settings/{userId}", h.Payroll.UpdateSetting)
				r.Post("/calculate", h.Payroll.Calculate)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPerformanceViewAll))
				r.Get("/", h.Performance.List)
				r.Get("/{userId}", h.Performance.ForUser)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Edit)
				r.Post("/{id}", h.User.Update)
				r.Post("/{id}/delete", h.User.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/", h.Report.Index)
				r.Get("/{kind}", h.Report.Download)
			})

			r.Route("/device", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDeviceManage))
				r.Get("/", h.Device.Show)
				r.Post("/config", h.Device.SaveConfig)
				r.Post("/config/clear", h.Device.ClearConfig)
				r.Post("/palms", h.Device.RegisterPalm)
				r.Post("/palms/{personId}/delete", h.Device.DeletePalm)
				r.Post("/sync", h.Device.Sync)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return r
}
