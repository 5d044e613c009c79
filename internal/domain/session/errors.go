package session

import "errors"

var (
	ErrUnauthenticated = errors.New("session is not authenticated")
	ErrMissingID       = errors.New("session id is missing")
)
