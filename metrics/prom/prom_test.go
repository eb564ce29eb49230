package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/IvanBrykalov/boundcache/cache"
)

func TestAdapter_CountsSignals(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a := New(reg, "test", "cache", nil)

	a.Hit()
	a.Hit()
	a.Miss()
	a.Reject()
	a.Evict(cache.EvictCapacity)
	a.Evict(cache.EvictCapacity)
	a.Evict(cache.EvictClear)
	a.Size(7, 512)

	assert.Equal(t, 2.0, testutil.ToFloat64(a.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.rejects))
	assert.Equal(t, 2.0, testutil.ToFloat64(a.evicts.WithLabelValues("capacity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.evicts.WithLabelValues("clear")))
	assert.Equal(t, 7.0, testutil.ToFloat64(a.sizeEnt))
	assert.Equal(t, 512.0, testutil.ToFloat64(a.sizeCost))
}

func TestAdapter_WiredThroughCache(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a := New(reg, "test", "wired", nil)

	c := cache.New[string, string](cache.Options[string, string]{
		MaxCost: 2,
		Model:   cache.CountBounded,
		Metrics: a,
	})

	_, _ = c.Put("a", "1")
	_, _ = c.Put("b", "2")
	_, _ = c.Put("c", "3") // evicts a
	c.Get("c")
	c.Get("gone")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.evicts.WithLabelValues("capacity")))
	assert.Equal(t, 2.0, testutil.ToFloat64(a.sizeEnt))
}
