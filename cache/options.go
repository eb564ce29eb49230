package cache

import (
	"github.com/IvanBrykalov/boundcache/policy"
)

// Model selects how the ledger accounts entries against MaxCost.
type Model int

const (
	// SizeBounded charges each entry its byte cost against a byte budget.
	SizeBounded Model = iota
	// CountBounded charges every entry a cost of 1 against an entry budget.
	CountBounded
)

// String returns a stable label for the model ("size" or "count").
func (m Model) String() string {
	if m == CountBounded {
		return "count"
	}
	return "size"
}

// Decision is the verdict of an eviction callback.
type Decision int

const (
	// Evict lets the eviction proceed.
	Evict Decision = iota
	// Keep vetoes the eviction: the entry survives the current admission
	// attempt entirely and stays resident.
	Keep
)

// EvictionCallback is consulted before an entry is evicted to free
// capacity. It runs synchronously inside Put/Clear and must not call back
// into the same cache (reentrancy is undefined behavior). It is never
// invoked for explicit Remove.
type EvictionCallback[K ~string, V any] func(k K, v V) Decision

// EvictReason explains why an entry was removed.
type EvictReason int

const (
	// EvictCapacity — removed to free headroom for a new entry.
	EvictCapacity EvictReason = iota
	// EvictClear — removed by Clear.
	EvictClear
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	// Reject is signaled when an admission attempt fails: the entry alone
	// exceeds the limit, or eviction could not free enough headroom.
	Reject()
	Size(entries int, cost int64)
}

// Clock provides time in UnixNano; useful for deterministic decay tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures a cache. Zero values are safe; defaults are applied
// in New():
//   - nil Policy  => LRU
//   - nil Cost    => sizeof.Of (size-bounded caches only)
//   - nil Metrics => NoopMetrics
//   - nil Clock   => time.Now
type Options[K ~string, V any] struct {
	// MaxCost is the total cost budget: bytes for SizeBounded,
	// entries for CountBounded. Must be > 0.
	MaxCost int64

	// Model selects byte-size or entry-count accounting.
	Model Model

	// Policy is the eviction order (LRU/LFU); nil => LRU.
	// The instance must be exclusive to this cache.
	Policy policy.Policy[K, V]

	// Cost derives a value's byte cost when PutWith is called without an
	// explicit cost. nil => sizeof.Of. Ignored by count-bounded caches.
	Cost func(v V) (int64, error)

	// Metrics receives hit/miss/evict/reject/size signals.
	Metrics Metrics

	// Clock overrides the time source (tests, decay). Nil => time.Now().
	Clock Clock
}
