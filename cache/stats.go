package cache

// Stats is a point-in-time snapshot of a cache's counters, suitable for
// summary formatting and monitoring.
type Stats struct {
	// Entries is the number of resident entries.
	Entries int
	// Cost is the current total cost; Limit the budget it counts against.
	Cost  int64
	Limit int64
	// Model tells whether Cost/Limit are bytes or entry counts.
	Model Model

	// Lifetime counters.
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Rejections uint64
}

// Stats returns a snapshot of the cache counters.
func (c *cache[K, V]) Stats() Stats {
	return Stats{
		Entries:    len(c.entries),
		Cost:       c.led.used,
		Limit:      c.led.limit,
		Model:      c.opt.Model,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evicts,
		Rejections: c.rejects,
	}
}
