// Package cache provides an in-memory read-through cache in front of the
// order feed, so that repeated dashboard refreshes within a short window do
// not each pay for a full upstream fetch.
package cache

import (
	"context"
	"sync"
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/core/ports"
)

// OrderFeedCache decorates an OrderFeed, caching ListOrders batches per page
// size for a fixed TTL.
//
// Write-path calls (GetFulfillment, CreateFulfillmentEvent) pass straight
// through, and an accepted event append invalidates the cached batches so the
// next read observes the new status. Read-after-write consistency for the
// timeline itself remains the upstream feed's responsibility; the cache only
// makes sure it does not serve a snapshot it knows is stale.
type OrderFeedCache struct {
	upstream ports.OrderFeed
	ttl      time.Duration

	mu      sync.RWMutex
	batches map[int]cachedBatch
}

type cachedBatch struct {
	orders    []*order.Order
	fetchedAt time.Time
}

// NewOrderFeedCache creates a caching decorator around upstream with the
// given TTL. A non-positive TTL disables caching entirely.
func NewOrderFeedCache(upstream ports.OrderFeed, ttl time.Duration) *OrderFeedCache {
	return &OrderFeedCache{
		upstream: upstream,
		ttl:      ttl,
		batches:  make(map[int]cachedBatch),
	}
}

// ListOrders serves a cached batch when one is fresh, fetching from upstream
// otherwise.
func (c *OrderFeedCache) ListOrders(ctx context.Context, first int) ([]*order.Order, error) {
	if c.ttl <= 0 {
		return c.upstream.ListOrders(ctx, first)
	}

	c.mu.RLock()
	batch, ok := c.batches[first]
	c.mu.RUnlock()

	if ok && time.Since(batch.fetchedAt) < c.ttl {
		return batch.orders, nil
	}

	orders, err := c.upstream.ListOrders(ctx, first)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.batches[first] = cachedBatch{orders: orders, fetchedAt: time.Now()}
	c.mu.Unlock()

	return orders, nil
}

// GetFulfillment passes through to the upstream feed.
func (c *OrderFeedCache) GetFulfillment(ctx context.Context, fulfillmentID string) (order.Fulfillment, error) {
	return c.upstream.GetFulfillment(ctx, fulfillmentID)
}

// CreateFulfillmentEvent passes through to the upstream feed and, on success,
// drops all cached batches.
func (c *OrderFeedCache) CreateFulfillmentEvent(
	ctx context.Context,
	fulfillmentID string,
	status delivery.Status,
) error {
	if err := c.upstream.CreateFulfillmentEvent(ctx, fulfillmentID, status); err != nil {
		return err
	}

	c.mu.Lock()
	c.batches = make(map[int]cachedBatch)
	c.mu.Unlock()

	return nil
}
