package device

import "errors"

var (
	ErrNotConfigured  = errors.New("device integration is not configured")
	ErrPersonNotFound = errors.New("person not found on device")
)
