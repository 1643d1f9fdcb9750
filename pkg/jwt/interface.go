package jwt

import (
	"context"
	"errors"
	"time"

	"chat-srv/pkg/scope"
)

// Verification failures. Callers distinguish these to report the exact
// credential problem (WS close codes, 401 bodies).
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// Blacklist tracks revoked token IDs until their natural expiry.
type Blacklist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// Manager issues, verifies and revokes access tokens.
type Manager interface {
	Generate(userID int64, email string) (string, error)
	Verify(ctx context.Context, tokenString string) (scope.Payload, error)
	Revoke(ctx context.Context, tokenString string) error
}

// New creates a new JWT manager. blacklist may be nil, in which case
// revocation checks are skipped and Revoke is a no-op.
func New(cfg Config, blacklist Blacklist) (Manager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL,
		blacklist: blacklist,
	}, nil
}
