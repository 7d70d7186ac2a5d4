package api

import (
	"context"
	"fmt"
)

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credentials is the server's response to a successful login or
// registration.
type Credentials struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login exchanges an email and password for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	req := map[string]string{"email": email, "password": password}
	var creds Credentials
	if err := c.post(ctx, "/auth/login", req, &creds); err != nil {
		return Credentials{}, fmt.Errorf("login failed: %w", err)
	}
	return creds, nil
}

// Register creates an account and returns a session token for it.
func (c *Client) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	req := map[string]string{"name": name, "email": email, "password": password}
	var creds Credentials
	if err := c.post(ctx, "/auth/register", req, &creds); err != nil {
		return Credentials{}, fmt.Errorf("registration failed: %w", err)
	}
	return creds, nil
}

// Logout invalidates the session server-side. The local token is
// cleared by the caller regardless of the outcome, matching the
// always-clear behavior users expect from logout.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}
