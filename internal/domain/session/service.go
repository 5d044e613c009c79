package session

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// Service is the single writer for session keys.
type Service interface {
	// Authenticate validates the stored token against the backend. Any failure
	// clears token and user and returns ErrUnauthenticated.
	Authenticate(ctx context.Context, id string) (*user.User, string, error)
	Login(ctx context.Context, id string, req auth.LoginRequest) (*user.User, error)
	Logout(ctx context.Context, id string) error
	// Expire clears token and user after the backend rejected the token.
	Expire(ctx context.Context, id string) error

	Token(ctx context.Context, id string) (string, error)
	CachedUser(ctx context.Context, id string) (*user.User, error)
	// RefreshProfile refetches the profile with the stored token and caches it
	RefreshProfile(ctx context.Context, id string) (*user.User, error)

	UserViewMode(ctx context.Context, id string) (bool, error)
	SetUserViewMode(ctx context.Context, id string, enabled bool) error

	DeviceConfig(ctx context.Context, id string) (device.Config, error)
	SetDeviceConfig(ctx context.Context, id string, cfg device.Config) error
	ClearDeviceConfig(ctx context.Context, id string) error

	// Subscribe streams key changes of one session until cleanup is called
	Subscribe(id string) (<-chan Change, func())
	// OnSignOut registers fn to run after Logout or Expire removed a
	// session's token. It fires whether or not anything is subscribed.
	OnSignOut(fn func(id string))
}
