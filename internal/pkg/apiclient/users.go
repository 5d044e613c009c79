package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (user.User, error) {
	var u user.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &u); err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (c *Client) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	var u user.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", req, &u); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (c *Client) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	var u user.User
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(req.ID), req, &u); err != nil {
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
