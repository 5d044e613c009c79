package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type DeviceHandler interface {
	Show(w http.ResponseWriter, r *http.Request)
	SaveConfig(w http.ResponseWriter, r *http.Request)
	ClearConfig(w http.ResponseWriter, r *http.Request)
	RegisterPalm(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
	DeletePalm(w http.ResponseWriter, r *http.Request)
}

type DeviceHandlerImpl struct {
	pages
	deviceService device.Service
	userService   user.UserService
}

type deviceData struct {
	Config     device.Config
	Configured bool
	Status     *device.Status
	Persons    []device.Person
	Users      []user.User
}

const deviceBack = "/admin/device"

// Show handles GET /admin/device
func (h *DeviceHandlerImpl) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data deviceData

	cfg, err := h.deviceService.GetConfig(ctx)
	if errors.Is(err, device.ErrNotConfigured) {
		h.show(w, r, view.Page{Name: "device", Title: "nav.device", Data: data}, nil)
		return
	}
	if err != nil {
		h.show(w, r, view.Page{Name: "device", Title: "nav.device", Data: data}, err)
		return
	}
	data.Config = cfg.Masked()
	data.Configured = true

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, err := h.deviceService.Status(gctx)
		if err != nil {
			return err
		}
		data.Status = &status
		return nil
	})
	g.Go(func() error {
		persons, err := h.deviceService.Persons(gctx)
		data.Persons = persons
		return err
	})
	g.Go(func() error {
		users, err := h.userService.List(gctx)
		data.Users = users
		return err
	})
	err = g.Wait()

	h.show(w, r, view.Page{Name: "device", Title: "nav.device", Data: data}, err)
}

// SaveConfig handles POST /admin/device/config. An empty password keeps the
// stored one.
func (h *DeviceHandlerImpl) SaveConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		h.fail(w, r, "SaveDeviceConfig", err, deviceBack)
		return
	}

	cfg := device.Config{
		BaseURL:  strings.TrimRight(strings.TrimSpace(r.PostFormValue("baseUrl")), "/"),
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		DeviceSN: strings.TrimSpace(r.PostFormValue("deviceSn")),
	}
	if cfg.Password == "" {
		if stored, err := h.deviceService.GetConfig(ctx); err == nil {
			cfg.Password = stored.Password
		}
	}

	if err := h.deviceService.SaveConfig(ctx, cfg); err != nil {
		h.fail(w, r, "SaveDeviceConfig", err, deviceBack)
		return
	}
	h.done(w, r, "flash.device_saved", deviceBack)
}

// ClearConfig handles POST /admin/device/config/clear
func (h *DeviceHandlerImpl) ClearConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.deviceService.ClearConfig(r.Context()); err != nil {
		h.fail(w, r, "ClearDeviceConfig", err, deviceBack)
		return
	}
	h.done(w, r, "flash.device_cleared", deviceBack)
}

// RegisterPalm handles POST /admin/device/palms
func (h *DeviceHandlerImpl) RegisterPalm(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, "RegisterPalm", err, deviceBack)
		return
	}
	req := device.RegisterPalmRequest{
		UserID:   r.PostFormValue("userId"),
		PersonID: strings.TrimSpace(r.PostFormValue("personId")),
	}
	if err := h.deviceService.RegisterPalm(r.Context(), req); err != nil {
		h.fail(w, r, "RegisterPalm", err, deviceBack)
		return
	}
	h.done(w, r, "flash.palm_registered", deviceBack)
}

// Sync handles POST /admin/device/sync
func (h *DeviceHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.deviceService.Sync(r.Context())
	if err != nil {
		h.fail(w, r, "SyncPalms", err, deviceBack)
		return
	}
	h.done(w, r, "flash.palm_synced", deviceBack, map[string]any{"Synced": result.Synced, "Failed": result.Failed})
}

// DeletePalm handles POST /admin/device/palms/{personId}/delete
func (h *DeviceHandlerImpl) DeletePalm(w http.ResponseWriter, r *http.Request) {
	if err := h.deviceService.DeletePalm(r.Context(), chi.URLParam(r, "personId")); err != nil {
		h.fail(w, r, "DeletePalm", err, deviceBack)
		return
	}
	h.done(w, r, "flash.palm_deleted", deviceBack)
}

func NewDeviceHandler(renderer *view.Renderer, sessions session.Service, deviceService device.Service, userService user.UserService) DeviceHandler {
	return &DeviceHandlerImpl{
		pages:         pages{view: renderer, sessions: sessions},
		deviceService: deviceService,
		userService:   userService,
	}
}
