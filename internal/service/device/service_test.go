package device

import (
	"context"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigs struct {
	byID map[string]device.Config
}

func (f *fakeConfigs) DeviceConfig(ctx context.Context, id string) (device.Config, error) {
	cfg, ok := f.byID[id]
	if !ok {
		return device.Config{}, device.ErrNotConfigured
	}
	return cfg, nil
}

func (f *fakeConfigs) SetDeviceConfig(ctx context.Context, id string, cfg device.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.byID[id] = cfg
	return nil
}

func (f *fakeConfigs) ClearDeviceConfig(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeRepo struct {
	seen []device.Config
}

func (f *fakeRepo) GetDeviceStatus(ctx context.Context, cfg device.Config) (device.Status, error) {
	f.seen = append(f.seen, cfg)
	return device.Status{Online: true, DeviceSN: cfg.DeviceSN}, nil
}

func (f *fakeRepo) ListDevicePersons(ctx context.Context, cfg device.Config) ([]device.Person, error) {
	return nil, nil
}

func (f *fakeRepo) RegisterPalm(ctx context.Context, cfg device.Config, req device.RegisterPalmRequest) error {
	f.seen = append(f.seen, cfg)
	return nil
}

func (f *fakeRepo) SyncPalms(ctx context.Context, cfg device.Config) (device.SyncResult, error) {
	return device.SyncResult{Synced: 3, Failed: 1}, nil
}

func (f *fakeRepo) DeletePalm(ctx context.Context, cfg device.Config, personID string) error {
	return nil
}

var validConfig = device.Config{BaseURL: "http://10.0.0.12:8090", Username: "admin", Password: "secret", DeviceSN: "PV-01"}

func TestStatus_UsesSessionConfig(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDeviceService(repo, &fakeConfigs{byID: map[string]device.Config{}})
	ctx := session.WithID(context.Background(), "s1")

	_, err := svc.Status(ctx)
	assert.ErrorIs(t, err, device.ErrNotConfigured)
	assert.Empty(t, repo.seen)

	require.NoError(t, svc.SaveConfig(ctx, validConfig))
	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PV-01", status.DeviceSN)
	assert.Equal(t, validConfig, repo.seen[0])

	other := session.WithID(context.Background(), "s2")
	_, err = svc.Status(other)
	assert.ErrorIs(t, err, device.ErrNotConfigured)
}

func TestMissingSessionID(t *testing.T) {
	svc := NewDeviceService(&fakeRepo{}, &fakeConfigs{byID: map[string]device.Config{}})
	_, err := svc.Persons(context.Background())
	assert.ErrorIs(t, err, session.ErrMissingID)
}

func TestRegisterPalm_Validates(t *testing.T) {
	repo := &fakeRepo{}
	configs := &fakeConfigs{byID: map[string]device.Config{"s1": validConfig}}
	svc := NewDeviceService(repo, configs)
	ctx := session.WithID(context.Background(), "s1")

	assert.Error(t, svc.RegisterPalm(ctx, device.RegisterPalmRequest{UserID: "1"}))
	assert.Empty(t, repo.seen)

	require.NoError(t, svc.RegisterPalm(ctx, device.RegisterPalmRequest{UserID: "1", PersonID: "P-1"}))
	assert.Len(t, repo.seen, 1)

	require.NoError(t, svc.ClearConfig(ctx))
	assert.ErrorIs(t, svc.DeletePalm(ctx, "P-1"), device.ErrNotConfigured)
}
