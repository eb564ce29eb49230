// Package zaplog provides a zap-based cache.Metrics adapter that logs
// every signal. Useful during development and in tests; for production
// scraping use metrics/prom instead.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/IvanBrykalov/boundcache/cache"
)

// Adapter implements cache.Metrics by logging signals via zap.
type Adapter struct {
	logger *zap.Logger
}

// Compile-time check that Adapter implements cache.Metrics.
var _ cache.Metrics = (*Adapter)(nil)

// New creates a logging metrics adapter.
// If logger is nil, a no-op logger is used.
func New(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{logger: logger}
}

// Hit logs a cache hit.
func (a *Adapter) Hit() {
	a.logger.Debug("cache hit")
}

// Miss logs a cache miss.
func (a *Adapter) Miss() {
	a.logger.Debug("cache miss")
}

// Evict logs an eviction with its reason.
func (a *Adapter) Evict(r cache.EvictReason) {
	a.logger.Debug("cache evict",
		zap.String("reason", reason(r)),
	)
}

// Reject logs a rejected admission.
func (a *Adapter) Reject() {
	a.logger.Debug("cache reject")
}

// Size logs the current entry count and total cost.
func (a *Adapter) Size(entries int, cost int64) {
	a.logger.Debug("cache size",
		zap.Int("entries", entries),
		zap.Int64("cost", cost),
	)
}

func reason(r cache.EvictReason) string {
	if r == cache.EvictClear {
		return "clear"
	}
	return "capacity"
}
