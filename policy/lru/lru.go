// Package lru implements the Least-Recently-Used eviction policy.
package lru

import "github.com/IvanBrykalov/boundcache/policy"

// lru is a classic "move-to-front" Least-Recently-Used policy.
// It delegates all list manipulation to policy.Hooks provided by the cache;
// the policy itself holds no per-key state.
type lru[K ~string, V any] struct {
	h policy.Hooks[K, V]
}

// New returns an LRU policy instance. Each cache needs its own.
func New[K ~string, V any]() policy.Policy[K, V] { return &lru[K, V]{} }

// Bind attaches the cache's list hooks.
func (p *lru[K, V]) Bind(h policy.Hooks[K, V]) { p.h = h }

// OnAdd places the new entry at the most-recent end.
func (p *lru[K, V]) OnAdd(n policy.Node[K, V]) { p.h.PushFront(n) }

// OnGet promotes the entry to most recent.
func (p *lru[K, V]) OnGet(n policy.Node[K, V]) { p.h.MoveToFront(n) }

// OnRemove detaches the entry from the recency list.
func (p *lru[K, V]) OnRemove(n policy.Node[K, V]) { p.h.Unlink(n) }

// BeforeAdmit is a no-op: recency order needs no time-driven maintenance.
func (p *lru[K, V]) BeforeAdmit(int64) {}

// Victims walks the list from the least-recent end toward the most-recent
// and returns the keys in that order. The slice is a snapshot: evicting or
// keeping entries afterwards does not invalidate it.
func (p *lru[K, V]) Victims() []K {
	keys := make([]K, 0, p.h.Len())
	for n := p.h.Back(); n != nil; n = p.h.Next(n) {
		keys = append(keys, n.Key())
	}
	return keys
}
