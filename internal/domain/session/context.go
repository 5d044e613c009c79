package session

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

type ctxKey int

const (
	idKey ctxKey = iota
	userKey
)

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

// IDFromContext returns the session id set by the session middleware.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(idKey).(string)
	return id
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the profile the guard validated for this request.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok && u != nil
}
