// Package cache provides a bounded, generic, in-process key/value
// cache with pluggable eviction policies (LRU and LFU), veto-able eviction
// callbacks, byte-size or entry-count capacity accounting, and lightweight
// metrics hooks.
//
// # Design
//
//   - Storage: one map[K]*entry for lookups plus a key-linked recency list
//     (head = most recent, tail = least recent). Links are key relations,
//     not pointers; neighbor lookups resolve through the map, which keeps
//     ownership simple while preserving O(1) list operations.
//
//   - Capacity: a ledger tracks cumulative cost against a mutable limit.
//     Size-bounded caches charge each entry its byte cost (derived via the
//     sizeof package when not supplied); count-bounded caches charge 1 per
//     entry. An entry whose cost exceeds the limit is rejected outright,
//     before any eviction.
//
//   - Policies: eviction order is pluggable via the policy package.
//     LRU evicts the least recently touched entry; LFU ranks entries by an
//     access counter that decays passively (all counters are halved when a
//     Put crosses the decay deadline — there is no background timer).
//     The victim order is snapshotted once per admission: LFU sorts the
//     live set once and evicts down that fixed order even as counters and
//     membership change mid-loop.
//
//   - Callbacks: an eviction callback attached via PutWith is consulted
//     before its entry is evicted; returning Keep vetoes the eviction and
//     the entry survives the whole admission attempt. Remove never consults
//     the callback. Rejection after some evictions does not roll them back.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Reject/Size signals.
//     NoopMetrics is the default; adapters for Prometheus and zap live
//     under metrics/.
//
// # Concurrency
//
// The cache is deliberately single-caller: no locks, no goroutines, no
// reentrancy guards. Every operation runs to completion before the next
// may begin, and eviction callbacks must not call back into the cache.
// Wrap an instance in your own mutex, or give each goroutine its own
// cache, if you need sharing.
//
// # Basic usage
//
//	// A 1 MiB byte-bounded LRU cache.
//	c := cache.NewSizeLRU[string, []byte](1 << 20)
//	ok, err := c.Put("a", []byte("payload"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	c.Remove("a")
//
// # LFU with decay
//
//	c, p := cache.NewCountLFU[string, string](10_000, time.Minute)
//	p.SetDecayInterval(5 * time.Minute) // tune at runtime
//
// # Veto-able eviction
//
//	c.PutWith("pinned", v, -1, func(k string, v string) cache.Decision {
//	    return cache.Keep // never evicted to make room, still Remove-able
//	})
package cache
