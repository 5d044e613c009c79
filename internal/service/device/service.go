package device

import (
	"context"
	"log/slog"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
)

// ConfigStore is the part of the session service holding device credentials.
type ConfigStore interface {
	DeviceConfig(ctx context.Context, id string) (device.Config, error)
	SetDeviceConfig(ctx context.Context, id string, cfg device.Config) error
	ClearDeviceConfig(ctx context.Context, id string) error
}

type DeviceServiceImpl struct {
	deviceRepo device.Repository
	configs    ConfigStore
}

func NewDeviceService(deviceRepo device.Repository, configs ConfigStore) device.Service {
	return &DeviceServiceImpl{deviceRepo: deviceRepo, configs: configs}
}

func (s *DeviceServiceImpl) config(ctx context.Context) (device.Config, error) {
	id := session.IDFromContext(ctx)
	if id == "" {
		return device.Config{}, session.ErrMissingID
	}
	cfg, err := s.configs.DeviceConfig(ctx, id)
	if err != nil {
		return device.Config{}, err
	}
	if cfg.IsZero() {
		return device.Config{}, device.ErrNotConfigured
	}
	return cfg, nil
}

func (s *DeviceServiceImpl) GetConfig(ctx context.Context) (device.Config, error) {
	return s.config(ctx)
}

func (s *DeviceServiceImpl) SaveConfig(ctx context.Context, cfg device.Config) error {
	id := session.IDFromContext(ctx)
	if id == "" {
		return session.ErrMissingID
	}
	return s.configs.SetDeviceConfig(ctx, id, cfg)
}

func (s *DeviceServiceImpl) ClearConfig(ctx context.Context) error {
	id := session.IDFromContext(ctx)
	if id == "" {
		return session.ErrMissingID
	}
	return s.configs.ClearDeviceConfig(ctx, id)
}

func (s *DeviceServiceImpl) Status(ctx context.Context) (device.Status, error) {
	cfg, err := s.config(ctx)
	if err != nil {
		return device.Status{}, err
	}
	return s.deviceRepo.GetDeviceStatus(ctx, cfg)
}

func (s *DeviceServiceImpl) Persons(ctx context.Context) ([]device.Person, error) {
	cfg, err := s.config(ctx)
	if err != nil {
		return nil, err
	}
	return s.deviceRepo.ListDevicePersons(ctx, cfg)
}

func (s *DeviceServiceImpl) RegisterPalm(ctx context.Context, req device.RegisterPalmRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	cfg, err := s.config(ctx)
	if err != nil {
		return err
	}
	return s.deviceRepo.RegisterPalm(ctx, cfg, req)
}

func (s *DeviceServiceImpl) Sync(ctx context.Context) (device.SyncResult, error) {
	cfg, err := s.config(ctx)
	if err != nil {
		return device.SyncResult{}, err
	}
	result, err := s.deviceRepo.SyncPalms(ctx, cfg)
	if err != nil {
		return device.SyncResult{}, err
	}
	if result.Failed > 0 {
		slog.Warn("palm sync incomplete", "device_sn", cfg.DeviceSN, "synced", result.Synced, "failed", result.Failed)
	}
	return result, nil
}

func (s *DeviceServiceImpl) DeletePalm(ctx context.Context, personID string) error {
	if personID == "" {
		return device.ErrPersonNotFound
	}
	cfg, err := s.config(ctx)
	if err != nil {
		return err
	}
	return s.deviceRepo.DeletePalm(ctx, cfg, personID)
}
