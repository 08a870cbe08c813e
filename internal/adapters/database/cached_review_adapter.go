package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/providers"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
)

// CachedReviewAdapter wraps a ReviewRepository with per-entity caching.
// Each review list is cached under the id of the business or customer it
// belongs to; a write invalidates exactly those two keys, strictly after
// the insert has been acknowledged.
type CachedReviewAdapter struct {
	adapter repositories.ReviewRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedReviewAdapter creates a new cached review adapter. Metrics
// may be nil; hit and miss counters are then skipped.
func NewCachedReviewAdapter(adapter repositories.ReviewRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.ReviewRepository {
	return &CachedReviewAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

// Cache TTL (in seconds)
const reviewListTTL = 120

func businessReviewsCacheKey(businessID string) string {
	return fmt.Sprintf("reviews:business:%s", businessID)
}

func customerReviewsCacheKey(customerID string) string {
	return fmt.Sprintf("reviews:customer:%s", customerID)
}

// Create delegates the write, then invalidates the dependent cached
// lists. Invalidation deletes the entries rather than patching them;
// the next read repopulates from the database.
func (a *CachedReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	if err := a.adapter.Create(ctx, review); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx,
		businessReviewsCacheKey(review.BusinessID),
		customerReviewsCacheKey(review.CustomerID),
	); err != nil {
		log.Printf("Failed to invalidate review caches for business %s: %v", review.BusinessID, err)
	}

	return nil
}

// ListByBusiness retrieves a business's reviews with caching.
func (a *CachedReviewAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	return a.cachedList(ctx, businessReviewsCacheKey(businessID), func() ([]*entities.Review, error) {
		return a.adapter.ListByBusiness(ctx, businessID)
	})
}

// ListByCustomer retrieves a customer's reviews with caching.
func (a *CachedReviewAdapter) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Review, error) {
	return a.cachedList(ctx, customerReviewsCacheKey(customerID), func() ([]*entities.Review, error) {
		return a.adapter.ListByCustomer(ctx, customerID)
	})
}

func (a *CachedReviewAdapter) cachedList(ctx context.Context, cacheKey string, fetch func() ([]*entities.Review, error)) ([]*entities.Review, error) {
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var reviews []*entities.Review
		if err := json.Unmarshal(cached, &reviews); err == nil {
			if a.metrics != nil {
				observability.RecordCacheHit(ctx, a.metrics, cacheKey)
			}
			return reviews, nil
		}
		log.Printf("Failed to unmarshal cached reviews %s: %v", cacheKey, err)
	}
	if a.metrics != nil {
		observability.RecordCacheMiss(ctx, a.metrics, cacheKey)
	}

	reviews, err := fetch()
	if err != nil {
		return nil, err
	}

	// Fill the cache off the request path.
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(reviews); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, reviewListTTL); err != nil {
				log.Printf("Failed to cache reviews %s: %v", cacheKey, err)
			}
		}
	}()

	return reviews, nil
}
