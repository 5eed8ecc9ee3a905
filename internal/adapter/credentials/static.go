// Package credentials provides credential-store adapters besides the
// database: the env-seeded bootstrap account and a fallback chain.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// StaticStore recognises exactly one account, configured at startup. It keeps
// the back office reachable before any admin rows exist in the database.
type StaticStore struct {
	account domain.AdminAccount
}

// NewStaticStore hashes password and builds the single-account store.
func NewStaticStore(name, email, password string) (*StaticStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash bootstrap password: %w", err)
	}
	return &StaticStore{
		account: domain.AdminAccount{
			ID:           "1",
			Name:         name,
			Email:        strings.ToLower(email),
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		},
	}, nil
}

// GetAdminByEmail implements port.CredentialStore.
func (s *StaticStore) GetAdminByEmail(_ context.Context, email string) (*domain.AdminAccount, error) {
	if !strings.EqualFold(email, s.account.Email) {
		return nil, port.ErrNotFound
	}
	acct := s.account
	return &acct, nil
}

// Fallback chains credential stores: each store is asked in order until one
// finds the account.
type Fallback []port.CredentialStore

// GetAdminByEmail implements port.CredentialStore.
func (f Fallback) GetAdminByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	for _, store := range f {
		acct, err := store.GetAdminByEmail(ctx, email)
		if err == nil {
			return acct, nil
		}
		if !errors.Is(err, port.ErrNotFound) {
			return nil, err
		}
	}
	return nil, port.ErrNotFound
}
