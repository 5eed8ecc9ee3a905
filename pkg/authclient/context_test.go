package authclient

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	token string
	user  *User

	loginErr  error
	meErr     error
	logoutErr error

	logoutCalls int
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (string, *User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAPI) Me(_ context.Context, token string) (*User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	if token != f.token {
		return nil, ErrInvalidCredentials
	}
	return f.user, nil
}

func adminUser() *User {
	return &User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: "admin"}
}

func TestLogin_PopulatesBothStores(t *testing.T) {
	primary := &MemoryStore{}
	secondary := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	stores := DualStore{primary, secondary}

	api := &fakeAPI{token: "tok-123", user: adminUser()}

	var visited []string
	auth := NewContext(api, stores, func(p string) { visited = append(visited, p) })

	require.NoError(t, auth.Login(context.Background(), "admin@example.com", "s3cret"))

	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "admin@example.com", auth.User().Email)
	assert.NoError(t, auth.Err())
	assert.False(t, auth.Loading())
	assert.Equal(t, []string{"/dashboard"}, visited)

	tok, err := primary.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)

	tok, err = secondary.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok, "token must land in both locations")
}

func TestLogin_Failure(t *testing.T) {
	stores := DualStore{&MemoryStore{}}
	api := &fakeAPI{loginErr: ErrInvalidCredentials}

	var visited []string
	auth := NewContext(api, stores, func(p string) { visited = append(visited, p) })

	err := auth.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.User())
	assert.ErrorIs(t, auth.Err(), ErrInvalidCredentials)
	assert.False(t, auth.Loading(), "loading resets even on failure")
	assert.Empty(t, visited, "no navigation on failed login")

	tok, err := stores.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "failed login writes nothing")
}

func TestLogout_ClearsEverything(t *testing.T) {
	stores := DualStore{&MemoryStore{}}
	api := &fakeAPI{token: "tok-123", user: adminUser()}

	var visited []string
	auth := NewContext(api, stores, func(p string) { visited = append(visited, p) })

	require.NoError(t, auth.Login(context.Background(), "admin@example.com", "s3cret"))
	require.NoError(t, auth.Logout(context.Background()))

	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.User())
	assert.Equal(t, 1, api.logoutCalls)
	assert.Equal(t, []string{"/dashboard", "/login"}, visited)

	tok, err := stores.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLogout_DropsStateDespiteServerError(t *testing.T) {
	stores := DualStore{&MemoryStore{}}
	api := &fakeAPI{token: "tok-123", user: adminUser(), logoutErr: errors.New("server down")}

	auth := NewContext(api, stores, nil)
	require.NoError(t, auth.Login(context.Background(), "admin@example.com", "s3cret"))

	err := auth.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, auth.IsAuthenticated(), "local session drops even when the server call fails")

	tok, loadErr := stores.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, tok)
}

func TestInit_RestoresSession(t *testing.T) {
	stores := DualStore{&MemoryStore{}}
	require.NoError(t, stores.Save("tok-123"))

	api := &fakeAPI{token: "tok-123", user: adminUser()}
	auth := NewContext(api, stores, nil)

	require.NoError(t, auth.Init(context.Background()))
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "1", auth.User().ID)

	// A second Init is harmless.
	require.NoError(t, auth.Init(context.Background()))
	assert.True(t, auth.IsAuthenticated())
}

func TestInit_ClearsStaleToken(t *testing.T) {
	stores := DualStore{&MemoryStore{}}
	require.NoError(t, stores.Save("expired-token"))

	api := &fakeAPI{token: "tok-123", user: adminUser()}
	auth := NewContext(api, stores, nil)

	require.NoError(t, auth.Init(context.Background()))
	assert.False(t, auth.IsAuthenticated())

	tok, err := stores.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "rejected tokens are purged from storage")
}

func TestInit_NoToken(t *testing.T) {
	auth := NewContext(&fakeAPI{}, DualStore{&MemoryStore{}}, nil)

	require.NoError(t, auth.Init(context.Background()))
	assert.False(t, auth.IsAuthenticated())
	assert.False(t, auth.Loading())
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := &FileStore{Path: filepath.Join(t.TempDir(), "token")}

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "missing file reads as no token")

	require.NoError(t, s.Save("tok-456"))
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", tok)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing twice is fine")
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestDualStore_ReadsFirstAvailable(t *testing.T) {
	primary := &MemoryStore{}
	secondary := &MemoryStore{}
	stores := DualStore{primary, secondary}

	require.NoError(t, secondary.Save("from-secondary"))

	tok, err := stores.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-secondary", tok, "falls through to the second location")
}
