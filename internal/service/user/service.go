package user

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

type UserServiceImpl struct {
	userRepository user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepository: userRepository}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	list, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.User, error) {
	if id == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return s.userRepository.GetUser(ctx, id)
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	return s.userRepository.CreateUser(ctx, req)
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	return s.userRepository.UpdateUser(ctx, req)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return user.ErrUserNotFound
	}
	return s.userRepository.DeleteUser(ctx, id)
}

// UpdateProfile only forwards the self-service fields, so a user cannot
// change their own role or quota through the profile form.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, self *user.User, req user.UpdateProfileRequest) (user.User, error) {
	if self == nil || self.ID.IsZero() {
		return user.User{}, user.ErrUserNotFound
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	return s.userRepository.UpdateUser(ctx, user.UpdateUserRequest{
		ID:       self.ID.String(),
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Photo:    req.Photo,
	})
}
