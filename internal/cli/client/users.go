package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsersOptions are the optional filters of the user listing.
type ListUsersOptions struct {
	Status string
	Role   string
	Page   int
	Size   int
}

// Register creates a new member account. No credential is required.
func (c *Client) Register(ctx context.Context, body RegisterRequest) (*User, error) {
	return doJSON[User](ctx, c, http.MethodPost, "/users/register", requestOptions{body: body})
}

func (c *Client) ListUsers(ctx context.Context, opts ListUsersOptions) (*Page[User], error) {
	query := pageQuery(opts.Page, opts.Size)
	query["status"] = opts.Status
	query["role"] = opts.Role
	return doJSON[Page[User]](ctx, c, http.MethodGet, "/users", requestOptions{query: query})
}

func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	return doJSON[User](ctx, c, http.MethodGet, fmt.Sprintf("/users/%d", id), requestOptions{})
}

func (c *Client) UpdateUser(ctx context.Context, id int64, body UserUpdate) (*User, error) {
	return doJSON[User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d", id), requestOptions{body: body})
}

func (c *Client) ChangePassword(ctx context.Context, id int64, body ChangePasswordRequest) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/password", id), requestOptions{body: body})
	return err
}

func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status string) (*User, error) {
	return doJSON[User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d/status", id), requestOptions{
		body: map[string]string{"status": status},
	})
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role string) (*User, error) {
	return doJSON[User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d/role", id), requestOptions{
		body: map[string]string{"role": role},
	})
}
