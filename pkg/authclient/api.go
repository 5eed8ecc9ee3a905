// Package authclient is the Go client for the admin session API. It mirrors
// what the dashboard frontend does: log in, keep the token in a local store
// and the cookie jar, and restore the session on startup.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// ErrInvalidCredentials reports a login rejected by the server. Anything
// else the server returns surfaces as a regular error.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the authenticated admin identity as returned by the API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// API is the server surface the auth context depends on. Tests substitute a
// fake; production code uses Client.
type API interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context, token string) (*User, error)
}

// Client talks to the admin API over HTTP. Its cookie jar holds the session
// cookie, so the jar is the cookie half of the dual token storage.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
	}, nil
}

// Login exchanges credentials for a token. The session cookie lands in the
// jar as a side effect of the response.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", nil, fmt.Errorf("decode login response: %w", err)
	}
	return body.Token, body.User, nil
}

// Logout clears the server-side cookie. The jar picks up the expiry.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	resp.Body.Close()
	return nil
}

// Me verifies a stored token against the server and returns the user behind
// it, or ErrInvalidCredentials when the token no longer stands.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("me: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		User *User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode me response: %w", err)
	}
	return body.User, nil
}
