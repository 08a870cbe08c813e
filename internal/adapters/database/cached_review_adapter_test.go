package database_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/WambuiJane/visit-stamp-rewards/internal/adapters/database"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, assert.AnError
	}
	return value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

type memoryReviewRepo struct {
	reviews []*entities.Review

	listCalls int
	createErr error
}

func (r *memoryReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memoryReviewRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	r.listCalls++
	return r.reviews, nil
}

func (r *memoryReviewRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Review, error) {
	r.listCalls++
	return r.reviews, nil
}

func TestCachedReviewAdapter_ListByBusiness_CacheHit(t *testing.T) {
	cache := newMemoryCache()
	repo := &memoryReviewRepo{}
	adapter := database.NewCachedReviewAdapter(repo, cache, nil)

	cached := []*entities.Review{{ID: "rev-1", BusinessID: "biz-1"}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), "reviews:business:biz-1", data, 120))

	reviews, err := adapter.ListByBusiness(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "rev-1", reviews[0].ID)
	assert.Zero(t, repo.listCalls)
}

func TestCachedReviewAdapter_ListByBusiness_CacheMiss(t *testing.T) {
	cache := newMemoryCache()
	repo := &memoryReviewRepo{reviews: []*entities.Review{{ID: "rev-1", BusinessID: "biz-1"}}}
	adapter := database.NewCachedReviewAdapter(repo, cache, nil)

	reviews, err := adapter.ListByBusiness(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCachedReviewAdapter_Create_InvalidatesBothLists(t *testing.T) {
	cache := newMemoryCache()
	repo := &memoryReviewRepo{}
	adapter := database.NewCachedReviewAdapter(repo, cache, nil)

	require.NoError(t, cache.Set(context.Background(), "reviews:business:biz-1", []byte("[]"), 120))
	require.NoError(t, cache.Set(context.Background(), "reviews:customer:cust-1", []byte("[]"), 120))

	rating := 5
	err := adapter.Create(context.Background(), &entities.Review{
		ID:         "rev-1",
		BusinessID: "biz-1",
		CustomerID: "cust-1",
		Rating:     &rating,
	})
	require.NoError(t, err)

	assert.Len(t, repo.reviews, 1)
	assert.ElementsMatch(t, []string{"reviews:business:biz-1", "reviews:customer:cust-1"}, cache.deleted)
}

func TestCachedReviewAdapter_Create_FailedWriteKeepsCache(t *testing.T) {
	cache := newMemoryCache()
	repo := &memoryReviewRepo{createErr: assert.AnError}
	adapter := database.NewCachedReviewAdapter(repo, cache, nil)

	require.NoError(t, cache.Set(context.Background(), "reviews:business:biz-1", []byte("[]"), 120))

	rating := 4
	err := adapter.Create(context.Background(), &entities.Review{
		ID:         "rev-1",
		BusinessID: "biz-1",
		CustomerID: "cust-1",
		Rating:     &rating,
	})
	require.Error(t, err)
	assert.Empty(t, cache.deleted)
}
