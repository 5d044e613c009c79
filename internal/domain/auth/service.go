package auth

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// Repository - interface for /api/auth and the identity endpoint
type Repository interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Me resolves the bearer token on ctx to its profile
	Me(ctx context.Context) (user.User, error)
}
