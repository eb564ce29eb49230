package cache

// ledger tracks cumulative cost against a mutable limit. usage is
// maintained incrementally by debit/credit; it is never recomputed from
// the entry set.
type ledger struct {
	used  int64
	limit int64
}

// wouldFit reports whether an entry of the given cost could ever be
// admitted, independent of current usage.
func (l *ledger) wouldFit(cost int64) bool { return cost <= l.limit }

// headroom returns the capacity still available. It can be negative after
// the limit was lowered below current usage.
func (l *ledger) headroom() int64 { return l.limit - l.used }

// debit charges an admitted entry's cost.
func (l *ledger) debit(cost int64) { l.used += cost }

// credit returns an evicted or removed entry's cost.
func (l *ledger) credit(cost int64) {
	l.used -= cost
	if l.used < 0 {
		l.used = 0
	}
}

// setLimit replaces the limit without evicting anything. Shrinking below
// current usage is allowed and only affects future admissions.
func (l *ledger) setLimit(n int64) { l.limit = n }
