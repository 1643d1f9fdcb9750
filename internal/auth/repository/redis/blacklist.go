// Package redis implements the token blacklist on Redis. Revoked token IDs
// live exactly as long as the token itself would, so the set is self-pruning.
package redis

import (
	"context"
	"time"

	redisClient "github.com/redis/go-redis/v9"

	"chat-srv/pkg/jwt"
	pkgLog "chat-srv/pkg/log"
)

const revokedKeyPrefix = "revoked:"

type implBlacklist struct {
	l      pkgLog.Logger
	client *redisClient.Client
}

var _ jwt.Blacklist = &implBlacklist{}

func New(l pkgLog.Logger, client *redisClient.Client) *implBlacklist {
	return &implBlacklist{
		l:      l,
		client: client,
	}
}

func (b *implBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		b.l.Errorf(ctx, "internal.auth.repository.redis.IsRevoked: %v", err)
		return false, err
	}
	return n > 0, nil
}

func (b *implBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := b.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		b.l.Errorf(ctx, "internal.auth.repository.redis.Revoke: %v", err)
		return err
	}
	return nil
}
