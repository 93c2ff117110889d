package reports

import (
	"context"
	"sync"
	"time"
)

// CacheState is the lifecycle position of a cached summary.
type CacheState int

const (
	CacheAbsent CacheState = iota
	CacheFresh
	CacheStale
)

func (s CacheState) String() string {
	switch s {
	case CacheFresh:
		return "fresh"
	case CacheStale:
		return "stale"
	default:
		return "absent"
	}
}

// DefaultSummaryTTL is how long a computed summary is served without
// touching the store.
const DefaultSummaryTTL = 60 * time.Second

// Clock returns the current instant. Tests swap it for a fake.
type Clock func() time.Time

// SummaryCache memoizes sales summaries by key. Get reports the entry's state
// and returns the stored value for Fresh and Stale entries.
type SummaryCache interface {
	Get(ctx context.Context, key string) (SalesSummary, CacheState, error)
	Set(ctx context.Context, key string, summary SalesSummary) error
}

// SummaryCacheKey renders the (sales-summary, date, store) tuple.
func SummaryCacheKey(date Date, scope string) string {
	return "sales-summary:" + date.String() + ":" + scope
}

type cacheEntry struct {
	value    SalesSummary
	storedAt time.Time
}

// MemoryCache is a process-local SummaryCache. Entries are never evicted;
// stale ones are replaced in place on the next Set.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     Clock
}

// NewMemoryCache builds a memory cache. A zero ttl uses DefaultSummaryTTL and
// a nil clock uses time.Now.
func NewMemoryCache(ttl time.Duration, clock Clock) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     clock,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (SalesSummary, CacheState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return SalesSummary{}, CacheAbsent, nil
	}
	return entry.value, stateAt(entry.storedAt, c.now(), c.ttl), nil
}

func (c *MemoryCache) Set(_ context.Context, key string, summary SalesSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: summary, storedAt: c.now()}
	return nil
}

// Len reports how many keys have ever been stored.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// stateAt is Stale once more than ttl has elapsed since storedAt.
func stateAt(storedAt, now time.Time, ttl time.Duration) CacheState {
	if now.Sub(storedAt) > ttl {
		return CacheStale
	}
	return CacheFresh
}
