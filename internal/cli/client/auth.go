package client

import (
	"context"
	"net/http"
)

// AuthResponse is the login response: the bearer token plus a snapshot of
// the authenticated user.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return doJSON[AuthResponse](ctx, c, http.MethodPost, "/auth/login", requestOptions{
		body: loginRequest{Email: email, Password: password},
	})
}

// Me returns the user the stored credential belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return doJSON[User](ctx, c, http.MethodGet, "/auth/me", requestOptions{})
}
