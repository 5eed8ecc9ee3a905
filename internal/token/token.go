// Package token issues and verifies the signed session tokens that carry an
// admin identity between requests.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/luxehaven/admin-api/internal/domain"
)

// DefaultTTL is the fixed session-token lifetime.
const DefaultTTL = 24 * time.Hour

// Claims is the token payload: the serialized user plus the registered
// time claims.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a single symmetric key.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithTTL overrides the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(i *Issuer) { i.ttl = ttl }
}

// WithNow overrides the clock, for expiry tests.
func WithNow(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer creates an Issuer signing with secret using HS256.
func NewIssuer(secret string, opts ...Option) *Issuer {
	i := &Issuer{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue creates a fresh signed token encoding u. A new token is produced on
// every call; tokens are never cached.
func (i *Issuer) Issue(u *domain.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks raw against the signing key and the current time and recovers
// the encoded user. Bad signature, structural corruption and expiry are
// indistinguishable to the caller: all yield (nil, false).
func (i *Issuer) Verify(raw string) (*domain.User, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	// The payload must decode back into a complete user; a token missing
	// identity fields is treated as corrupt.
	if claims.UserID == "" || claims.Email == "" || claims.Role == "" {
		return nil, false
	}

	return &domain.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, true
}
