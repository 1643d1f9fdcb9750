package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeBlacklist struct {
	revoked map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]time.Duration)}
}

func (f *fakeBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func (f *fakeBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{SecretKey: testSecret, Issuer: "test", TTL: time.Hour}},
		{name: "short secret", cfg: Config{SecretKey: "short", Issuer: "test", TTL: time.Hour}, wantErr: true},
		{name: "zero ttl", cfg: Config{SecretKey: testSecret, Issuer: "test"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManager_GenerateVerify(t *testing.T) {
	ctx := context.Background()
	mgr, err := New(Config{SecretKey: testSecret, Issuer: "test", TTL: time.Hour}, nil)
	require.NoError(t, err)

	token, err := mgr.Generate(42, "someone@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := mgr.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, "someone@example.com", payload.Email)
	assert.NotEmpty(t, payload.TokenID)
	assert.Greater(t, payload.ExpiresAt, payload.IssuedAt)
}

func TestManager_VerifyFailures(t *testing.T) {
	ctx := context.Background()
	mgr, err := New(Config{SecretKey: testSecret, Issuer: "test", TTL: time.Hour}, nil)
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := mgr.Verify(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := New(Config{SecretKey: "ffffffffffffffffffffffffffffffff", Issuer: "test", TTL: time.Hour}, nil)
		require.NoError(t, err)
		token, err := other.Generate(1, "a@b.c")
		require.NoError(t, err)

		_, err = mgr.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, err := New(Config{SecretKey: testSecret, Issuer: "test", TTL: time.Nanosecond}, nil)
		require.NoError(t, err)
		token, err := shortLived.Generate(1, "a@b.c")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = shortLived.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()
	blacklist := newFakeBlacklist()
	mgr, err := New(Config{SecretKey: testSecret, Issuer: "test", TTL: time.Hour}, blacklist)
	require.NoError(t, err)

	token, err := mgr.Generate(1, "a@b.c")
	require.NoError(t, err)

	// Valid before revocation.
	_, err = mgr.Verify(ctx, token)
	require.NoError(t, err)

	require.NoError(t, mgr.Revoke(ctx, token))

	_, err = mgr.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// Blacklist entries live no longer than the token itself.
	for _, ttl := range blacklist.revoked {
		assert.LessOrEqual(t, ttl, time.Hour)
		assert.Positive(t, ttl)
	}
}

func TestManager_RevokeInvalidToken(t *testing.T) {
	ctx := context.Background()
	mgr, err := New(Config{SecretKey: testSecret, Issuer: "test", TTL: time.Hour}, newFakeBlacklist())
	require.NoError(t, err)

	assert.ErrorIs(t, mgr.Revoke(ctx, "garbage"), ErrInvalidToken)
}
