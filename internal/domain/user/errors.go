package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrCannotDeleteSelf    = errors.New("admins cannot delete their own account")
)
