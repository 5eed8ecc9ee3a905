package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
	"github.com/luxehaven/admin-api/internal/token"
)

// AuthService validates credentials and exchanges them for session tokens.
type AuthService struct {
	creds  port.CredentialStore
	tokens *token.Issuer
}

// NewAuthService creates a new auth service.
func NewAuthService(creds port.CredentialStore, tokens *token.Issuer) *AuthService {
	return &AuthService{creds: creds, tokens: tokens}
}

// ValidateCredentials returns the matching user, or (nil, nil) when the pair
// matches no account. Wrong credentials are a normal outcome, not an error;
// err is reserved for infrastructure failures.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	acct, err := s.creds.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, port.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return acct.User(), nil
}

// Login validates the pair and issues a session token. A failed match
// returns ("", nil, nil).
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, nil
	}
	tok, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, user, nil
}

// VerifyToken recovers the user encoded in raw, or reports absence.
func (s *AuthService) VerifyToken(raw string) (*domain.User, bool) {
	return s.tokens.Verify(raw)
}

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
