package repositories

import (
	"context"
	"time"

	"healthclaim-portal/internal/core/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	claimCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hc_claim_cache_hits_total",
		Help: "Total number of claim lookups served from the cache.",
	})
	claimCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hc_claim_cache_misses_total",
		Help: "Total number of claim lookups that went to the store.",
	})
)

// CachedClaimSet puts an expiring LRU in front of GetByID.
// Writes go through to the store first and then refresh the cached entry.
type CachedClaimSet struct {
	store ClaimStore
	cache *expirable.LRU[string, *domain.ClaimRecord]
}

// NewCachedClaimSet wraps store with a cache of maxSize entries living for ttl
func NewCachedClaimSet(store ClaimStore, maxSize int, ttl time.Duration) *CachedClaimSet {
	return &CachedClaimSet{
		store: store,
		cache: expirable.NewLRU[string, *domain.ClaimRecord](maxSize, nil, ttl),
	}
}

// GetAll always reads the store
func (c *CachedClaimSet) GetAll(ctx context.Context) ([]*domain.ClaimRecord, error) {
	return c.store.GetAll(ctx)
}

// GetByID gets a claim by ID, from the cache when possible
func (c *CachedClaimSet) GetByID(ctx context.Context, id string) (*domain.ClaimRecord, error) {
	if claim, ok := c.cache.Get(id); ok {
		claimCacheHitsTotal.Inc()
		return claim.Clone(), nil
	}
	claimCacheMissesTotal.Inc()

	claim, err := c.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id, claim.Clone())
	return claim, nil
}

// Insert creates a claim in the store
func (c *CachedClaimSet) Insert(ctx context.Context, claim *domain.ClaimRecord) error {
	if err := c.store.Insert(ctx, claim); err != nil {
		return err
	}
	c.cache.Add(claim.ID, claim.Clone())
	return nil
}

// Upsert writes the claim to the store. A failed write drops the cached entry.
func (c *CachedClaimSet) Upsert(ctx context.Context, claim *domain.ClaimRecord) error {
	if err := c.store.Upsert(ctx, claim); err != nil {
		c.cache.Remove(claim.ID)
		return err
	}
	c.cache.Add(claim.ID, claim.Clone())
	return nil
}

// Len returns the number of cached entries
func (c *CachedClaimSet) Len() int {
	return c.cache.Len()
}
