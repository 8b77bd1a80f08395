package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/offer"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

// Store is the subset of redis commands the offer cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CachedRepository is a read-through redis cache in front of the offer rows
// of one tenant and target. Entries expire after ttl.
//
// Every tenant and target has a generation counter that is part of the entry
// key. Invalidate bumps the counter instead of deleting the entry, so a read
// that raced with it stores its rows under the old generation where no later
// read looks.
type CachedRepository struct {
	next   offer.RowRepository
	store  Store
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedRepository(next offer.RowRepository, store Store, ttl time.Duration, log logger.ZapLogger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedRepository) FindActive(ctx context.Context, t tenant.Tenant, target pricing.Target) ([]model.Offer, error) {
	gen, err := c.generation(ctx, t, target)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("offer cache read failed", zap.String("key", generationKey(t, target)), zap.Error(err))
		return c.next.FindActive(ctx, t, target)
	}

	key := cacheKey(t, target, gen)
	val, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		var rows []model.Offer
		if err := json.Unmarshal([]byte(val), &rows); err == nil {
			return rows, nil
		}
		c.logger.Warn("discarding unreadable offer cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("offer cache read failed", zap.String("key", key), zap.Error(err))
	}

	rows, err := c.next.FindActive(ctx, t, target)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		if err := c.store.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("offer cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return rows, nil
}

// Invalidate moves the given targets (all of them when none are named) to a
// new generation. Entries of the old generation are left to expire.
func (c *CachedRepository) Invalidate(ctx context.Context, t tenant.Tenant, targets ...pricing.Target) error {
	if len(targets) == 0 {
		targets = []pricing.Target{pricing.TargetService, pricing.TargetProduct}
	}

	for _, target := range targets {
		if err := c.store.Incr(ctx, generationKey(t, target)).Err(); err != nil {
			return fmt.Errorf("invalidate offer cache: %w", err)
		}
	}
	return nil
}

func (c *CachedRepository) generation(ctx context.Context, t tenant.Tenant, target pricing.Target) (string, error) {
	gen, err := c.store.Get(ctx, generationKey(t, target)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

func generationKey(t tenant.Tenant, target pricing.Target) string {
	return fmt.Sprintf("offers:gen:%s:%s:%s", t.BrandID, t.LocationID, target)
}

func cacheKey(t tenant.Tenant, target pricing.Target, gen string) string {
	return fmt.Sprintf("offers:%s:%s:%s:%s", t.BrandID, t.LocationID, target, gen)
}
