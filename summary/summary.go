// Package summary renders human-readable cache status lines.
package summary

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/IvanBrykalov/boundcache/cache"
)

// Format returns a one-line status string for the given counters, e.g.
//
//	42 entries, 1.3 MiB of 4.0 MiB (32.8%), 9001 hits / 120 misses, 17 evicted, 2 rejected
//
// Byte quantities are humanized for size-bounded caches; count-bounded
// caches report plain entry counts.
func Format(s cache.Stats) string {
	var used string
	if s.Model == cache.SizeBounded {
		used = fmt.Sprintf("%s of %s", humanize.IBytes(clamp(s.Cost)), humanize.IBytes(clamp(s.Limit)))
	} else {
		used = fmt.Sprintf("%d of %d slots", s.Cost, s.Limit)
	}
	return fmt.Sprintf("%d entries, %s (%.1f%%), %d hits / %d misses, %d evicted, %d rejected",
		s.Entries, used, fraction(s)*100,
		s.Hits, s.Misses, s.Evictions, s.Rejections)
}

func fraction(s cache.Stats) float64 {
	if s.Limit <= 0 {
		return 0
	}
	return float64(s.Cost) / float64(s.Limit)
}

func clamp(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
