package cache

import "github.com/IvanBrykalov/boundcache/policy"

// Key-linked recency list: head is the most-recent key, tail the least
// recent, "" marks both ends. All neighbor lookups resolve through the
// entry map, so the list owns only key relations while the map owns the
// entries themselves.

// pushFront inserts e at the most-recent end in O(1).
func (c *cache[K, V]) pushFront(e *entry[K, V]) {
	e.newer = ""
	e.older = c.head
	if c.head != "" {
		c.entries[c.head].newer = e.key
	}
	c.head = e.key
	if c.tail == "" {
		c.tail = e.key
	}
}

// moveToFront promotes e to most recent in O(1).
// Promoting the current head is a no-op (no redundant relinking).
func (c *cache[K, V]) moveToFront(e *entry[K, V]) {
	if c.head == e.key {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

// unlink detaches e, re-linking its neighbors and updating head/tail when
// e was an end. Unlinking the sole element resets both ends to "".
func (c *cache[K, V]) unlink(e *entry[K, V]) {
	if e.newer != "" {
		c.entries[e.newer].older = e.older
	} else if c.head == e.key {
		c.head = e.older
	}
	if e.older != "" {
		c.entries[e.older].newer = e.newer
	} else if c.tail == e.key {
		c.tail = e.newer
	}
	e.newer, e.older = "", ""
}

// back returns the least-recent entry, or nil when the list is empty.
func (c *cache[K, V]) back() *entry[K, V] {
	if c.tail == "" {
		return nil
	}
	return c.entries[c.tail]
}

// nextOf returns e's neighbor toward the most-recent end, or nil.
func (c *cache[K, V]) nextOf(e *entry[K, V]) *entry[K, V] {
	if e.newer == "" {
		return nil
	}
	return c.entries[e.newer]
}

// listHooks adapts the cache's list operations to policy.Hooks.
type listHooks[K ~string, V any] struct{ c *cache[K, V] }

func (h listHooks[K, V]) PushFront(n policy.Node[K, V])   { h.c.pushFront(n.(*entry[K, V])) }
func (h listHooks[K, V]) MoveToFront(n policy.Node[K, V]) { h.c.moveToFront(n.(*entry[K, V])) }
func (h listHooks[K, V]) Unlink(n policy.Node[K, V])      { h.c.unlink(n.(*entry[K, V])) }

func (h listHooks[K, V]) Back() policy.Node[K, V] {
	if e := h.c.back(); e != nil {
		return e
	}
	return nil
}

func (h listHooks[K, V]) Next(n policy.Node[K, V]) policy.Node[K, V] {
	if e := h.c.nextOf(n.(*entry[K, V])); e != nil {
		return e
	}
	return nil
}

func (h listHooks[K, V]) Len() int { return len(h.c.entries) }
