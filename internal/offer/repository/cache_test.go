package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type fakeStore struct {
	data    map[string]string
	getErr  error
	incrErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if b, ok := value.([]byte); ok {
		f.data[key] = string(b)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

type countingRows struct {
	rows  []model.Offer
	err   error
	calls int
	// during runs inside FindActive, after the rows were read.
	during func()
}

func (c *countingRows) FindActive(context.Context, tenant.Tenant, pricing.Target) ([]model.Offer, error) {
	c.calls++
	rows := c.rows
	if c.during != nil {
		c.during()
	}
	return rows, c.err
}

var (
	tenantA = tenant.Tenant{BrandID: "brand-a", LocationID: "loc-a"}
	tenantB = tenant.Tenant{BrandID: "brand-b", LocationID: "loc-b"}
)

func sampleRows() []model.Offer {
	return []model.Offer{{
		BaseModel:     model.BaseModel{ID: "o1"},
		BrandID:       tenantA.BrandID,
		LocationID:    tenantA.LocationID,
		Name:          "Ten off",
		DiscountType:  "amount",
		DiscountValue: decimal.RequireFromString("10.25"),
		Target:        "service",
		Scope:         "services",
		IsActive:      true,
		ItemIDs:       []string{"s1", "s2"},
	}}
}

func TestCachedRepository_FindActive(t *testing.T) {
	t.Run("read through then hit", func(t *testing.T) {
		store := newFakeStore()
		next := &countingRows{rows: sampleRows()}
		c := NewCachedRepository(next, store, time.Minute, logger.NewNop())

		first, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)
		require.NoError(t, err)
		second, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)
		require.NoError(t, err)

		assert.Equal(t, 1, next.calls)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.True(t, second[0].DiscountValue.Equal(decimal.RequireFromString("10.25")))
		assert.Equal(t, []string{"s1", "s2"}, []string(second[0].ItemIDs))
		assert.Contains(t, store.data, "offers:brand-a:loc-a:service:0")
	})

	t.Run("tenants and targets do not share entries", func(t *testing.T) {
		store := newFakeStore()
		next := &countingRows{rows: sampleRows()}
		c := NewCachedRepository(next, store, time.Minute, logger.NewNop())

		_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetService)
		_, _ = c.FindActive(context.Background(), tenantB, pricing.TargetService)
		_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetProduct)

		assert.Equal(t, 3, next.calls)
	})

	t.Run("redis outage falls through to the database", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errors.New("i/o timeout")
		next := &countingRows{rows: sampleRows()}
		c := NewCachedRepository(next, store, time.Minute, logger.NewNop())

		rows, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("database failure is not cached", func(t *testing.T) {
		store := newFakeStore()
		boom := errors.New("relation offers does not exist")
		c := NewCachedRepository(&countingRows{err: boom}, store, time.Minute, logger.NewNop())

		_, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, store.data)
	})

	t.Run("canceled request stops on cache error", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = context.Canceled
		next := &countingRows{rows: sampleRows()}
		c := NewCachedRepository(next, store, time.Minute, logger.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.FindActive(ctx, tenantA, pricing.TargetService)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, next.calls)
	})
}

func TestCachedRepository_Invalidate(t *testing.T) {
	store := newFakeStore()
	next := &countingRows{rows: sampleRows()}
	c := NewCachedRepository(next, store, time.Minute, logger.NewNop())

	_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetService)
	_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetProduct)
	_, _ = c.FindActive(context.Background(), tenantB, pricing.TargetService)
	require.Equal(t, 3, next.calls)

	require.NoError(t, c.Invalidate(context.Background(), tenantA, pricing.TargetService))
	assert.Equal(t, "1", store.data["offers:gen:brand-a:loc-a:service"])
	assert.NotContains(t, store.data, "offers:gen:brand-a:loc-a:product")
	assert.NotContains(t, store.data, "offers:gen:brand-b:loc-b:service")

	_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetService)
	_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetProduct)
	_, _ = c.FindActive(context.Background(), tenantB, pricing.TargetService)
	assert.Equal(t, 4, next.calls, "only the invalidated entry is reloaded")
	assert.Contains(t, store.data, "offers:brand-a:loc-a:service:1")

	require.NoError(t, c.Invalidate(context.Background(), tenantA))
	_, _ = c.FindActive(context.Background(), tenantA, pricing.TargetProduct)
	assert.Equal(t, 5, next.calls)

	store.incrErr = errors.New("READONLY")
	assert.Error(t, c.Invalidate(context.Background(), tenantB))
}

func TestCachedRepository_InvalidateDuringLoad(t *testing.T) {
	store := newFakeStore()
	next := &countingRows{rows: sampleRows()}
	c := NewCachedRepository(next, store, time.Minute, logger.NewNop())

	// The offer changes after the rows were read but before they are cached.
	next.during = func() {
		next.during = nil
		next.rows = nil
		require.NoError(t, c.Invalidate(context.Background(), tenantA, pricing.TargetService))
	}

	stale, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	fresh, err := c.FindActive(context.Background(), tenantA, pricing.TargetService)
	require.NoError(t, err)

	assert.Empty(t, fresh, "the rows read before the change are never served again")
	assert.Equal(t, 2, next.calls)
}
