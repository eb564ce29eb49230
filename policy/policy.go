package policy

// Node is the minimal contract a cache entry must satisfy for a policy.
// It provides read-only access to the key and a pointer to the value.
// The pointer allows in-place reads without re-linking the intrusive entry.
type Node[K ~string, V any] interface {
	Key() K
	Value() *V
}

// Hooks expose O(1) operations on the cache's key-linked recency list
// (head = most recent, tail = least recent). Implementations are provided
// by the cache; the list stores neighbor relations as keys, never pointers.
//
// Important: hooks manage only the list; the cache owns the key->entry map.
type Hooks[K ~string, V any] interface {
	// PushFront inserts the entry at the most-recent end (used on admission).
	PushFront(Node[K, V])
	// MoveToFront promotes the entry to most recent.
	// Promoting the entry that is already most recent is a no-op.
	MoveToFront(Node[K, V])
	// Unlink detaches the entry from the list, re-linking its neighbors
	// (map bookkeeping is done by the cache).
	Unlink(Node[K, V])
	// Back returns the current least-recent entry (or nil if the list is empty).
	Back() Node[K, V]
	// Next returns the entry's neighbor toward the most-recent end
	// (or nil when the entry is the most recent).
	Next(Node[K, V]) Node[K, V]
	// Len returns the number of resident entries in the cache.
	Len() int
}

// Policy is an eviction order bound to a single cache instance.
// All methods are invoked synchronously by the owning cache; a policy
// instance must not be shared between caches.
//
// Semantics:
//   - OnAdd registers a newly admitted entry (e.g. push to MRU, or start
//     its access counter at 1).
//   - OnGet records a successful lookup (promote / bump the counter).
//   - OnRemove is a notification that the entry is leaving the cache,
//     whether evicted, removed, or replaced. The cache performs the actual
//     map deletion.
//   - BeforeAdmit runs once at the start of every admission attempt, before
//     any eviction. Time-driven maintenance (LFU counter decay) happens here.
//   - Victims returns a snapshot of the live keys in eviction order, best
//     victim first. The cache walks the snapshot once per admission; keys
//     whose entries veto their eviction are skipped but stay in place.
type Policy[K ~string, V any] interface {
	// Bind attaches the cache's list hooks. Called exactly once, by the cache
	// constructor.
	Bind(Hooks[K, V])

	OnAdd(Node[K, V])
	OnGet(Node[K, V])
	OnRemove(Node[K, V])

	BeforeAdmit(nowUnixNano int64)
	Victims() []K
}
