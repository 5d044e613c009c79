package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	// login never carries a previous session's token
	if err := c.doJSON(WithToken(ctx, ""), http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return auth.LoginResponse{}, auth.ErrMissingToken
	}
	return resp, nil
}

func (c *Client) Me(ctx context.Context) (user.User, error) {
	var u user.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", nil, &u); err != nil {
		return user.User{}, fmt.Errorf("get current user: %w", err)
	}
	return u, nil
}
