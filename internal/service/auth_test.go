package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehaven/admin-api/internal/adapter/credentials"
	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
	"github.com/luxehaven/admin-api/internal/token"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	creds, err := credentials.NewStaticStore("Admin User", "admin@example.com", "admin123")
	require.NoError(t, err)
	return NewAuthService(creds, token.NewIssuer("test-secret"))
}

func TestValidateCredentials_Match(t *testing.T) {
	svc := newTestAuthService(t)

	user, err := svc.ValidateCredentials(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestValidateCredentials_EmailNormalised(t *testing.T) {
	svc := newTestAuthService(t)

	user, err := svc.ValidateCredentials(context.Background(), "  Admin@Example.com ", "admin123")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestValidateCredentials_NoMatchIsNotAnError(t *testing.T) {
	svc := newTestAuthService(t)

	for _, tc := range []struct{ email, password string }{
		{"admin@example.com", "wrong"},
		{"nobody@example.com", "admin123"},
		{"", ""},
	} {
		user, err := svc.ValidateCredentials(context.Background(), tc.email, tc.password)
		assert.NoError(t, err, "email %q", tc.email)
		assert.Nil(t, user)
	}
}

type failingCredStore struct{}

func (failingCredStore) GetAdminByEmail(context.Context, string) (*domain.AdminAccount, error) {
	return nil, errors.New("db down")
}

func TestValidateCredentials_StoreFailure(t *testing.T) {
	svc := NewAuthService(failingCredStore{}, token.NewIssuer("test-secret"))

	user, err := svc.ValidateCredentials(context.Background(), "admin@example.com", "admin123")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t)

	tok, user, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, tok)

	got, ok := svc.VerifyToken(tok)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestLogin_NoMatch(t *testing.T) {
	svc := newTestAuthService(t)

	tok, user, err := svc.Login(context.Background(), "nobody@example.com", "wrong")
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, user)
}

func TestFallback_ChainsStores(t *testing.T) {
	primaryMiss, err := credentials.NewStaticStore("A", "a@example.com", "pw1")
	require.NoError(t, err)
	secondary, err := credentials.NewStaticStore("B", "b@example.com", "pw2")
	require.NoError(t, err)

	chain := credentials.Fallback{primaryMiss, secondary}

	acct, err := chain.GetAdminByEmail(context.Background(), "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "B", acct.Name)

	_, err = chain.GetAdminByEmail(context.Background(), "c@example.com")
	assert.ErrorIs(t, err, port.ErrNotFound)
}
