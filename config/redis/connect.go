package redis

import (
	"context"
	"fmt"
	"time"

	"chat-srv/config"

	redis_client "github.com/redis/go-redis/v9"
)

// Connect creates a Redis client with the given configuration and verifies
// the connection with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis_client.Client, error) {
	client := redis_client.NewClient(&redis_client.Options{
		Addr:            cfg.Host,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
