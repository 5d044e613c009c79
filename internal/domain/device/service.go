package device

import "context"

// Service runs device operations with the credentials stored in the caller's session
type Service interface {
	GetConfig(ctx context.Context) (Config, error)
	SaveConfig(ctx context.Context, cfg Config) error
	ClearConfig(ctx context.Context) error

	Status(ctx context.Context) (Status, error)
	Persons(ctx context.Context) ([]Person, error)
	RegisterPalm(ctx context.Context, req RegisterPalmRequest) error
	Sync(ctx context.Context) (SyncResult, error)
	DeletePalm(ctx context.Context, personID string) error
}
