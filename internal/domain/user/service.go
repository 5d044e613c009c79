package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id string) error
	// UpdateProfile lets a user edit their own contact details and photo
	UpdateProfile(ctx context.Context, self *User, req UpdateProfileRequest) (User, error)
}
