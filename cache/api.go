package cache

// Cache is a bounded in-memory key/value cache with a pluggable eviction
// policy and either byte-size or entry-count capacity accounting.
//
// All operations are synchronous and single-caller: the cache holds no
// locks and must not be used from more than one goroutine at a time.
// Eviction callbacks run in-line and must not re-enter the cache.
//
// Typical complexity is O(1) per operation; admissions that need to evict
// pay O(n) once to snapshot the victim order (LFU sorts the live set,
// LRU walks the recency list).
type Cache[K ~string, V any] interface {
	// Put admits k→v, deriving the entry's cost from the value
	// (byte size for size-bounded caches, 1 for count-bounded ones).
	// It reports whether the entry was admitted: false with a nil error
	// means the entry was rejected — it alone exceeds the limit, or
	// eviction could not free enough headroom.
	// Errors: ErrKeyInvalid for an empty key, ErrCostRequired when the
	// value's byte size cannot be derived.
	Put(k K, v V) (bool, error)

	// PutWith is Put with full control: an explicit cost (negative means
	// "derive from the value") and an optional eviction veto callback,
	// both fixed for the entry's lifetime. Re-admitting an existing key
	// replaces its entry; the old entry's callback is not consulted.
	PutWith(k K, v V, cost int64, onEvict EvictionCallback[K, V]) (bool, error)

	// Get returns the value for k and a presence flag. A hit counts as an
	// access: LRU promotes the entry, LFU increments its counter.
	// A miss mutates nothing.
	Get(k K) (V, bool)

	// Remove unconditionally deletes k without consulting its eviction
	// callback. It returns the removed value, or the zero value and false
	// when k is absent.
	Remove(k K) (V, bool)

	// Clear deletes all entries. When invokeCallbacks is true each entry's
	// eviction callback is consulted first and a Keep verdict leaves that
	// entry resident.
	Clear(invokeCallbacks bool)

	// Len returns the number of resident entries.
	Len() int

	// Cost returns the current total cost (bytes or entries).
	Cost() int64

	// Fraction returns Cost()/Limit(); 0 when the limit is 0.
	Fraction() float64

	// Limit returns the current cost budget.
	Limit() int64

	// SetLimit replaces the cost budget without evicting anything.
	// A limit below current usage only affects future admissions.
	SetLimit(limit int64)

	// Stats returns a snapshot of the cache counters.
	Stats() Stats
}
