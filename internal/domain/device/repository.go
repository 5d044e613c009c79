package device

import "context"

// Repository - interface for the backend's /api/palm and /api/device proxy
type Repository interface {
	GetDeviceStatus(ctx context.Context, cfg Config) (Status, error)
	ListDevicePersons(ctx context.Context, cfg Config) ([]Person, error)
	RegisterPalm(ctx context.Context, cfg Config, req RegisterPalmRequest) error
	SyncPalms(ctx context.Context, cfg Config) (SyncResult, error)
	DeletePalm(ctx context.Context, cfg Config, personID string) error
}
