package cache

// entry is the per-key record owned by the cache. It stores the key/value
// alongside cost accounting, the optional eviction veto hook, and the
// recency-list links used by the LRU policy.
//
// Links are key relations, not pointers: neighbor lookups go through the
// entry map. The empty string means "no neighbor", which is unambiguous
// because admitted keys are never empty.
type entry[K ~string, V any] struct {
	key K
	val V

	// Cost units charged against the ledger: byte size for size-bounded
	// caches, always 1 for count-bounded ones. Fixed at admission.
	cost int64

	// Optional veto hook consulted before evicting this entry.
	onEvict EvictionCallback[K, V]

	// Recency links: newer points toward the most-recent end,
	// older toward the least-recent end.
	newer K
	older K
}

// Key returns the entry key (part of policy.Node).
func (e *entry[K, V]) Key() K { return e.key }

// Value returns a pointer to the stored value (part of policy.Node).
func (e *entry[K, V]) Value() *V { return &e.val }
