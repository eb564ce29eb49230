package cache

import (
	"time"

	"github.com/IvanBrykalov/boundcache/policy/lfu"
	"github.com/IvanBrykalov/boundcache/policy/lru"
)

// Convenience constructors for the four standard variants. Use New directly
// when you need custom Options (metrics, clock, cost function).

// NewSizeLRU creates a byte-bounded LRU cache.
func NewSizeLRU[K ~string, V any](maxBytes int64) Cache[K, V] {
	return New[K, V](Options[K, V]{MaxCost: maxBytes, Model: SizeBounded, Policy: lru.New[K, V]()})
}

// NewCountLRU creates an entry-count-bounded LRU cache.
func NewCountLRU[K ~string, V any](maxEntries int64) Cache[K, V] {
	return New[K, V](Options[K, V]{MaxCost: maxEntries, Model: CountBounded, Policy: lru.New[K, V]()})
}

// NewSizeLFU creates a byte-bounded LFU cache. The returned policy handle
// controls the decay interval at runtime (negative decay disables it).
func NewSizeLFU[K ~string, V any](maxBytes int64, decay time.Duration) (Cache[K, V], *lfu.Policy[K, V]) {
	p := lfu.New[K, V](decay)
	return New[K, V](Options[K, V]{MaxCost: maxBytes, Model: SizeBounded, Policy: p}), p
}

// NewCountLFU creates an entry-count-bounded LFU cache.
func NewCountLFU[K ~string, V any](maxEntries int64, decay time.Duration) (Cache[K, V], *lfu.Policy[K, V]) {
	p := lfu.New[K, V](decay)
	return New[K, V](Options[K, V]{MaxCost: maxEntries, Model: CountBounded, Policy: p}), p
}
