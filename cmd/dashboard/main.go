package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/config"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	appHTTP "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/cron"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/database"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/jwt"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/logger"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/secret"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/sse"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/repository/memory"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/repository/postgresql"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/repository/redis"
	attendanceService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/attendance"
	dailyReportService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/dailyreport"
	deviceService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/device"
	leaveService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/leave"
	notificationService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/notification"
	payrollService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/payroll"
	performanceService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/performance"
	reportService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/report"
	sessionService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/session"
	userService "github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/viewmode"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log, logCloser := logger.New(logger.Options{
		App:        "hexasuite-dashboard",
		Version:    version,
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logCloser.Close()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		slog.Error("dashboard stopped", "error", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := i18n.Init(cfg.App.DefaultLocale); err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	box, err := deviceBox(cfg)
	if err != nil {
		return err
	}

	scheduler := cron.NewScheduler()
	store, closeStore, err := sessionStore(ctx, cfg, scheduler)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	hub := sse.NewHub()
	api := apiclient.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)

	sessions := sessionService.NewSessionService(store, api, box, hub)
	notifications := notificationService.NewNotificationService(
		notificationService.Sources{
			Leave:         api,
			Attendance:    api,
			EditRequests:  api,
			Notifications: api,
		},
		sessions,
		hub,
		scheduler,
		notificationService.Config{
			PendingInterval:      cfg.Poll.PendingInterval,
			NotificationInterval: cfg.Poll.NotificationInterval,
			ProfileInterval:      cfg.Poll.ProfileInterval,
		},
	)
	scheduler.AddJob("notification-sweep", time.Hour, func(ctx context.Context) error {
		if n := notifications.Sweep(cfg.Session.TTL); n > 0 {
			slog.Info("idle notification state dropped", "count", n)
		}
		return nil
	})
	viewModes := viewmode.NewViewModeService(sessions)

	attendanceSvc := attendanceService.NewAttendanceService(api, api, notifications)
	leaveSvc := leaveService.NewLeaveService(api, notifications)
	dailyReportSvc := dailyReportService.NewDailyReportService(api, api, notifications)
	payrollSvc := payrollService.NewPayrollService(api)
	performanceSvc := performanceService.NewPerformanceService(api)
	userSvc := userService.NewUserService(api)
	reportSvc := reportService.NewReportService(api)
	deviceSvc := deviceService.NewDeviceService(api, sessions)

	renderer, err := view.New(appHTTP.NewLayoutSource(viewModes, notifications), api.FileURL)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(renderer, jwtService, sessions, notifications),
		Layout:       appHTTP.NewLayoutHandler(renderer, sessions, hub, viewModes, notifications, cfg.App.ViewSwitchDelay),
		Dashboard:    appHTTP.NewDashboardHandler(renderer, sessions, attendanceSvc),
		Attendance:   appHTTP.NewAttendanceHandler(renderer, sessions, attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(renderer, sessions, leaveSvc),
		DailyReport:  appHTTP.NewDailyReportHandler(renderer, sessions, dailyReportSvc),
		Payroll:      appHTTP.NewPayrollHandler(renderer, sessions, payrollSvc, userSvc),
		Performance:  appHTTP.NewPerformanceHandler(renderer, sessions, performanceSvc),
		User:         appHTTP.NewUserHandler(renderer, sessions, userSvc),
		Notification: appHTTP.NewNotificationHandler(renderer, sessions, notifications),
		Report:       appHTTP.NewReportHandler(renderer, sessions, reportSvc),
		Device:       appHTTP.NewDeviceHandler(renderer, sessions, deviceSvc, userSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Debug:          cfg.App.Env == "development",
	}, jwtService, sessions, handlers)

	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", server.Addr, "api", cfg.API.BaseURL, "session_driver", cfg.Session.Driver)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// deviceBox seals the palm device credentials kept in the session.
func deviceBox(cfg *config.Config) (*secret.Box, error) {
	if cfg.Device.SecretKey != "" {
		box, err := secret.NewBox(cfg.Device.SecretKey)
		if err != nil {
			return nil, fmt.Errorf("DEVICE_SECRET_KEY: %w", err)
		}
		return box, nil
	}
	slog.Warn("DEVICE_SECRET_KEY not set, deriving the device key from SESSION_SECRET")
	return secret.DeriveBox(cfg.Session.Secret, "device-config")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// sessionStore opens the configured session driver. Stores without native
// expiry get an hourly purge job.
func sessionStore(ctx context.Context, cfg *config.Config, scheduler *cron.Scheduler) (session.Repository, io.Closer, error) {
	var (
		store  session.Repository
		closer io.Closer = closerFunc(func() error { return nil })
	)

	switch cfg.Session.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		repo := postgresql.NewSessionRepository(db, cfg.Session.TTL)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		store = repo
		closer = closerFunc(func() error { db.Close(); return nil })
	case "redis":
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redis.NewSessionStore(rdb, cfg.Session.TTL)
		closer = rdb
	default:
		store = memory.NewSessionStore(cfg.Session.TTL)
	}

	if purger, ok := store.(session.Purger); ok {
		ttl := cfg.Session.TTL
		scheduler.AddJob("session-purge", time.Hour, func(ctx context.Context) error {
			n, err := purger.Purge(ctx, ttl)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.Info("expired sessions purged", "count", n)
			}
			return nil
		})
	}

	return store, closer, nil
}
