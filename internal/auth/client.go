// Package auth logs visitors in against the catalog API and keeps the
// resulting token and profile in their session.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MikeMC777/snackshop/internal/backend"
)

type Client struct {
	api *backend.Client
}

func NewClient(api *backend.Client) *Client {
	return &Client{api: api}
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (Identity, error) {
	emailOrUsername = strings.TrimSpace(emailOrUsername)
	if emailOrUsername == "" || password == "" {
		return Identity{}, &Error{Message: "Email/username and password are required", Err: ErrInvalidInput}
	}
	var res loginResponse
	err := c.api.SendJSON(ctx, http.MethodPost, "/auth/login",
		LoginRequest{EmailOrUsername: emailOrUsername, Password: password}, "", &res)
	if err != nil {
		return Identity{}, &Error{Message: backend.MessageOf(err, "Login failed"), Err: err}
	}
	if res.Token == "" {
		return Identity{}, &Error{Message: "Login failed", Err: fmt.Errorf("login: empty token")}
	}
	return Identity{Token: res.Token, User: User{Username: res.Username, Role: res.Role}}, nil
}

// Register creates the account and then logs in with its email.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Identity, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return Identity{}, &Error{Message: "Username, email and password are required", Err: ErrInvalidInput}
	}
	if err := c.api.SendJSON(ctx, http.MethodPost, "/auth/register", req, "", nil); err != nil {
		return Identity{}, &Error{Message: backend.MessageOf(err, "Register failed"), Err: err}
	}
	return c.Login(ctx, req.Email, req.Password)
}
