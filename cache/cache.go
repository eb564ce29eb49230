package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/IvanBrykalov/boundcache/policy"
	"github.com/IvanBrykalov/boundcache/policy/lru"
	"github.com/IvanBrykalov/boundcache/sizeof"
)

// ErrKeyInvalid is returned by Put/PutWith for an empty key.
var ErrKeyInvalid = errors.New("cache: key must be non-empty")

// ErrCostRequired is returned by Put/PutWith when no explicit cost was
// given and the value's byte size cannot be derived.
var ErrCostRequired = errors.New("cache: cost required")

// cache is a single-instance bounded KV store: an entry map, a capacity
// ledger, and a policy that decides eviction order. All mutable state is
// exclusively owned by this instance.
type cache[K ~string, V any] struct {
	entries map[K]*entry[K, V]
	head    K // most recent ("" = empty list)
	tail    K // least recent

	led ledger
	pol policy.Policy[K, V]
	opt Options[K, V]

	// Lifetime counters, surfaced via Stats.
	hits    uint64
	misses  uint64
	evicts  uint64
	rejects uint64
}

// New constructs a cache with the provided Options. See Options for the
// defaults applied here. New panics if MaxCost is not positive: a cache
// that can never admit anything is a configuration bug, not a runtime
// condition.
func New[K ~string, V any](opt Options[K, V]) Cache[K, V] {
	if opt.MaxCost <= 0 {
		panic("cache: MaxCost must be > 0")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K, V]()
	}
	if opt.Cost == nil {
		opt.Cost = func(v V) (int64, error) { return sizeof.Of(v) }
	}

	c := &cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		led:     ledger{limit: opt.MaxCost},
		pol:     opt.Policy,
		opt:     opt,
	}
	c.pol.Bind(listHooks[K, V]{c})
	return c
}

// ---- Cache[K,V] implementation ----

// Put admits k→v with a derived cost and no eviction callback.
func (c *cache[K, V]) Put(k K, v V) (bool, error) {
	return c.PutWith(k, v, -1, nil)
}

// PutWith runs the shared admission algorithm:
//
//  1. validate the key,
//  2. resolve the entry cost,
//  3. reject outright if the entry alone can never fit,
//  4. let the policy run time-driven maintenance (LFU decay),
//  5. evict victims in policy order until there is headroom, honoring
//     per-entry veto callbacks,
//  6. insert and debit the ledger.
//
// Evictions performed before a rejection are not rolled back; the new
// entry itself is only inserted on success.
func (c *cache[K, V]) PutWith(k K, v V, cost int64, onEvict EvictionCallback[K, V]) (bool, error) {
	if len(k) == 0 {
		return false, ErrKeyInvalid
	}

	switch {
	case c.opt.Model == CountBounded:
		// Count-bounded caches charge every entry the same, even when a
		// cost was supplied explicitly.
		cost = 1
	case cost < 0:
		derived, err := c.opt.Cost(v)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrCostRequired, err)
		}
		cost = derived
	}

	if !c.led.wouldFit(cost) {
		c.rejects++
		c.opt.Metrics.Reject()
		return false, nil
	}

	c.pol.BeforeAdmit(c.now())

	// Re-admitting an existing key discards the old entry first. Its veto
	// callback is not consulted: replacement follows the Remove path.
	if old, ok := c.entries[k]; ok {
		c.deleteEntry(old)
	}

	if c.led.headroom() < cost {
		// The victim order is snapshotted once per admission. Vetoed
		// entries are skipped but keep their position for future attempts.
		for _, vk := range c.pol.Victims() {
			if c.led.headroom() >= cost {
				break
			}
			victim, ok := c.entries[vk]
			if !ok {
				continue
			}
			if victim.onEvict != nil && victim.onEvict(victim.key, victim.val) == Keep {
				continue
			}
			c.deleteEntry(victim)
			c.evicts++
			c.opt.Metrics.Evict(EvictCapacity)
		}
		if c.led.headroom() < cost {
			c.rejects++
			c.opt.Metrics.Reject()
			c.opt.Metrics.Size(len(c.entries), c.led.used)
			return false, nil
		}
	}

	e := &entry[K, V]{key: k, val: v, cost: cost, onEvict: onEvict}
	c.entries[k] = e
	c.pol.OnAdd(e)
	c.led.debit(cost)
	c.opt.Metrics.Size(len(c.entries), c.led.used)
	return true, nil
}

// Get returns the value for k, recording the access with the policy.
func (c *cache[K, V]) Get(k K) (V, bool) {
	e, ok := c.entries[k]
	if !ok {
		c.misses++
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.pol.OnGet(e)
	c.hits++
	c.opt.Metrics.Hit()
	return e.val, true
}

// Remove deletes k without consulting its eviction callback.
func (c *cache[K, V]) Remove(k K) (V, bool) {
	e, ok := c.entries[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.deleteEntry(e)
	c.opt.Metrics.Size(len(c.entries), c.led.used)
	return e.val, true
}

// Clear deletes all entries through the same path as Remove. With
// invokeCallbacks set, a Keep verdict leaves that entry resident.
func (c *cache[K, V]) Clear(invokeCallbacks bool) {
	for _, e := range c.entries {
		if invokeCallbacks && e.onEvict != nil && e.onEvict(e.key, e.val) == Keep {
			continue
		}
		c.deleteEntry(e)
		c.evicts++
		c.opt.Metrics.Evict(EvictClear)
	}
	c.opt.Metrics.Size(len(c.entries), c.led.used)
}

// Len returns the number of resident entries.
func (c *cache[K, V]) Len() int { return len(c.entries) }

// Cost returns the current total cost.
func (c *cache[K, V]) Cost() int64 { return c.led.used }

// Fraction returns the used share of the budget.
func (c *cache[K, V]) Fraction() float64 {
	if c.led.limit <= 0 {
		return 0
	}
	return float64(c.led.used) / float64(c.led.limit)
}

// Limit returns the current cost budget.
func (c *cache[K, V]) Limit() int64 { return c.led.limit }

// SetLimit replaces the cost budget. Nothing is evicted; usage above a
// lowered limit drains through future admissions.
func (c *cache[K, V]) SetLimit(limit int64) { c.led.setLimit(limit) }

// ---- internals ----

// deleteEntry removes e from the policy, the entry map, and the ledger.
// It is the single exit path for entries (evict, remove, clear, replace).
func (c *cache[K, V]) deleteEntry(e *entry[K, V]) {
	c.pol.OnRemove(e)
	delete(c.entries, e.key)
	c.led.credit(e.cost)
}

func (c *cache[K, V]) now() int64 {
	if c.opt.Clock != nil {
		return c.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}
