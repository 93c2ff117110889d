package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// redisStore is the slice of pkg/redis.Client the summary cache needs.
type redisStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

type redisEntry struct {
	Value    SalesSummary `json:"value"`
	StoredAt time.Time    `json:"stored_at"`
}

// RedisSummaryCache shares summaries across API replicas. Entries expire in
// Redis after twice the ttl, so a key read within that grace is Stale rather
// than Absent.
type RedisSummaryCache struct {
	store redisStore
	ttl   time.Duration
	now   Clock
}

// NewRedisSummaryCache builds a Redis-backed cache.
func NewRedisSummaryCache(store redisStore, ttl time.Duration, clock Clock) (*RedisSummaryCache, error) {
	if store == nil {
		return nil, fmt.Errorf("redis store required")
	}
	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &RedisSummaryCache{store: store, ttl: ttl, now: clock}, nil
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) (SalesSummary, CacheState, error) {
	raw, found, err := c.store.Get(ctx, c.store.CacheKey(key))
	if err != nil {
		return SalesSummary{}, CacheAbsent, fmt.Errorf("read cached summary: %w", err)
	}
	if !found {
		return SalesSummary{}, CacheAbsent, nil
	}
	var entry redisEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return SalesSummary{}, CacheAbsent, fmt.Errorf("decode cached summary: %w", err)
	}
	return entry.Value, stateAt(entry.StoredAt, c.now(), c.ttl), nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, summary SalesSummary) error {
	payload, err := json.Marshal(redisEntry{Value: summary, StoredAt: c.now().UTC()})
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := c.store.Set(ctx, c.store.CacheKey(key), payload, 2*c.ttl); err != nil {
		return fmt.Errorf("write cached summary: %w", err)
	}
	return nil
}
