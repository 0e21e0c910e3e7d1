package cache

import (
	"context"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/constants"
	"vetcare-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client for the two durable concerns the app has:
// sign-out token blacklisting and the per-user onboarding flag. Everything
// else in the system is in-memory by design.
type Cache struct {
	rdb *redis.Client
}

func New(cfg config.RedisConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Cache:New:Connected", "addr", cfg.Addr, "db", cfg.DB)
	return &Cache{rdb: rdb}, nil
}

// BlacklistToken records a revoked token id until its natural expiry.
func (c *Cache) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, constants.RedisKeyTokenBlacklist+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token id has been revoked.
func (c *Cache) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, constants.RedisKeyTokenBlacklist+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetOnboardingSeen persists whether a user has completed onboarding.
func (c *Cache) SetOnboardingSeen(ctx context.Context, userID string, seen bool) error {
	if !seen {
		return c.rdb.Del(ctx, constants.RedisKeyOnboardingSeen+userID).Err()
	}
	return c.rdb.Set(ctx, constants.RedisKeyOnboardingSeen+userID, "1", 0).Err()
}

// OnboardingSeen reports whether a user has completed onboarding.
func (c *Cache) OnboardingSeen(ctx context.Context, userID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, constants.RedisKeyOnboardingSeen+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
