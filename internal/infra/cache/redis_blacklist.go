// Package cache provides Redis-backed implementations of short-lived
// bookkeeping services.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"unigate/config"
	"unigate/internal/domain/lifecycle"
	"unigate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const revokedKeyPrefix = "auth:revoked:"

// redisBlacklist implements service.TokenBlacklist on Redis. Only a hash of
// the token is stored, with a TTL matching the token's remaining lifetime, so
// entries clean themselves up.
type redisBlacklist struct {
	client *redis.Client
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenBlacklist creates the Redis-backed blacklist. When the redis config
// section is absent the feature is off and the constructor returns nil;
// callers then skip revocation checks.
func NewTokenBlacklist(params Params) (service.TokenBlacklist, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, token blacklist disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisBlacklist{
		client: client,
		logger: params.Logger,
	}, nil
}

// Revoke marks a token revoked for the given remaining lifetime.
func (b *redisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past expiry, nothing to revoke.
		return nil
	}

	key := revokedKeyPrefix + hashToken(token)
	if err := b.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store revoked token")
	}

	return nil
}

// IsRevoked reports whether the token has been revoked.
func (b *redisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := revokedKeyPrefix + hashToken(token)

	count, err := b.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return count > 0, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
