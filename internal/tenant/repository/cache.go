package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

// Store is the subset of redis commands the cached resolvers use.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver memoises subdomain lookups in redis. Unknown subdomains are
// not cached so a newly opened location resolves on its first request.
type CachedResolver struct {
	next   tenant.Resolver
	store  Store
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedResolver(next tenant.Resolver, store Store, ttl time.Duration, log logger.ZapLogger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedResolver) ResolveSubdomain(ctx context.Context, subdomain string) (tenant.Tenant, error) {
	key := cacheKey(subdomain)

	val, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		var t tenant.Tenant
		if err := json.Unmarshal([]byte(val), &t); err == nil && t.BrandID != "" && t.LocationID != "" {
			return t, nil
		}
		c.logger.Warn("discarding unreadable tenant cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("tenant cache read failed", zap.String("key", key), zap.Error(err))
	}

	t, err := c.next.ResolveSubdomain(ctx, subdomain)
	if err != nil {
		return tenant.Tenant{}, err
	}

	if data, err := json.Marshal(t); err == nil {
		if err := c.store.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("tenant cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return t, nil
}

func cacheKey(subdomain string) string {
	return "tenants:subdomain:" + subdomain
}
