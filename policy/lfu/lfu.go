// Package lfu implements the Least-Frequently-Used eviction policy with
// passive access-counter decay.
package lfu

import (
	"sort"
	"time"

	"github.com/IvanBrykalov/boundcache/policy"
)

// counter is the per-key frequency record.
// seq is an insertion sequence number used as a deterministic tie-break
// when two keys share the same hit count.
type counter struct {
	hits uint64
	seq  uint64
}

// Policy ranks entries by access count: every admitted key starts at 1,
// each hit increments it, and an optional decay sweep periodically halves
// all counters so stale popularity fades.
//
// Decay is purely passive: it is checked only inside BeforeAdmit, i.e. as a
// side effect of an admission attempt, never by a background timer. The
// counter state lives in the policy itself (the cache's recency list is not
// used), mirroring how ghost queues are policy-internal state in 2Q designs.
type Policy[K ~string, V any] struct {
	counters map[K]*counter
	nextSeq  uint64

	interval time.Duration // negative disables decay
	deadline int64         // UnixNano; 0 = armed lazily on the next BeforeAdmit
}

// New constructs an LFU policy. decayInterval is the period between counter
// halvings; a negative interval disables decay entirely. Each cache needs
// its own instance.
func New[K ~string, V any](decayInterval time.Duration) *Policy[K, V] {
	return &Policy[K, V]{
		counters: make(map[K]*counter),
		interval: decayInterval,
	}
}

// Bind is a no-op: LFU does not use the recency list.
func (p *Policy[K, V]) Bind(policy.Hooks[K, V]) {}

// OnAdd registers the key with an access count of 1.
func (p *Policy[K, V]) OnAdd(n policy.Node[K, V]) {
	p.nextSeq++
	p.counters[n.Key()] = &counter{hits: 1, seq: p.nextSeq}
}

// OnGet increments the key's access count.
func (p *Policy[K, V]) OnGet(n policy.Node[K, V]) {
	if c, ok := p.counters[n.Key()]; ok {
		c.hits++
	}
}

// OnRemove discards the key's counter.
func (p *Policy[K, V]) OnRemove(n policy.Node[K, V]) {
	delete(p.counters, n.Key())
}

// BeforeAdmit applies counter decay when the deadline has passed.
// The first call arms the deadline without decaying; after a sweep the next
// deadline is one interval from now, not from the old deadline.
func (p *Policy[K, V]) BeforeAdmit(nowUnixNano int64) {
	if p.interval < 0 {
		return
	}
	if p.deadline == 0 {
		p.deadline = nowUnixNano + p.interval.Nanoseconds()
		return
	}
	if nowUnixNano < p.deadline {
		return
	}
	for _, c := range p.counters {
		c.hits >>= 1
	}
	p.deadline = nowUnixNano + p.interval.Nanoseconds()
}

// Victims returns all live keys sorted ascending by access count, ties broken
// by insertion order. The sort runs over the full live set on every call;
// the result is a snapshot that later evictions do not re-order.
func (p *Policy[K, V]) Victims() []K {
	keys := make([]K, 0, len(p.counters))
	for k := range p.counters {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := p.counters[keys[i]], p.counters[keys[j]]
		if a.hits != b.hits {
			return a.hits < b.hits
		}
		return a.seq < b.seq
	})
	return keys
}

// Hits reports the current access count for a key.
func (p *Policy[K, V]) Hits(k K) (uint64, bool) {
	c, ok := p.counters[k]
	if !ok {
		return 0, false
	}
	return c.hits, true
}

// DecayInterval returns the current decay interval (negative = disabled).
func (p *Policy[K, V]) DecayInterval() time.Duration { return p.interval }

// SetDecayInterval replaces the decay interval and re-arms the deadline
// lazily on the next admission attempt.
func (p *Policy[K, V]) SetDecayInterval(d time.Duration) {
	p.interval = d
	p.deadline = 0
}

// Compile-time check: *Policy satisfies the policy contract.
var _ policy.Policy[string, any] = (*Policy[string, any])(nil)
