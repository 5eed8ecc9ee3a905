package authclient

import (
	"context"
	"errors"
	"sync"
)

// Context holds client-side auth state: the current user, a loading flag for
// in-flight operations, and the last login error. All methods are safe for
// concurrent use.
//
// Invariant: IsAuthenticated is true exactly when User is non-nil.
type Context struct {
	api      API
	tokens   TokenStore
	navigate func(path string)

	mu      sync.RWMutex
	user    *User
	loading bool
	err     error
}

// NewContext builds an auth context. navigate is called with the target path
// after login and logout; pass nil when the caller handles navigation.
func NewContext(api API, tokens TokenStore, navigate func(path string)) *Context {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Context{api: api, tokens: tokens, navigate: navigate}
}

// Init restores the session from the token store: a stored token is verified
// against the server, and a token that no longer stands is cleared from
// every storage location. Safe to call repeatedly.
func (a *Context) Init(ctx context.Context) error {
	a.setLoading(true)
	defer a.setLoading(false)

	tok, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if tok == "" {
		a.setUser(nil)
		return nil
	}

	user, err := a.api.Me(ctx, tok)
	if errors.Is(err, ErrInvalidCredentials) {
		a.setUser(nil)
		return a.tokens.Clear()
	}
	if err != nil {
		return err
	}
	a.setUser(user)
	return nil
}

// Login authenticates and, on success, stores the token and navigates to the
// dashboard. A rejected pair records ErrInvalidCredentials in Err and leaves
// the stores untouched. The loading flag is reset on every path out.
func (a *Context) Login(ctx context.Context, email, password string) error {
	a.setLoading(true)
	defer a.setLoading(false)

	token, user, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.mu.Lock()
		a.err = err
		a.user = nil
		a.mu.Unlock()
		return err
	}

	if err := a.tokens.Save(token); err != nil {
		return err
	}

	a.mu.Lock()
	a.user = user
	a.err = nil
	a.mu.Unlock()

	a.navigate("/dashboard")
	return nil
}

// Logout clears the session everywhere and navigates to the login page. The
// local state is dropped even when the server call fails.
func (a *Context) Logout(ctx context.Context) error {
	apiErr := a.api.Logout(ctx)
	storeErr := a.tokens.Clear()

	a.setUser(nil)
	a.navigate("/login")

	if apiErr != nil {
		return apiErr
	}
	return storeErr
}

// User returns the authenticated user, or nil.
func (a *Context) User() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// IsAuthenticated reports whether a verified session is active.
func (a *Context) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// Loading reports whether an auth operation is in flight.
func (a *Context) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// Err returns the error recorded by the last failed login, cleared by the
// next successful one.
func (a *Context) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *Context) setUser(u *User) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *Context) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}
