package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Remove semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := NewCountLRU[string, string](16)

		ok, err := c.Put(k, v)
		if k == "" {
			if err == nil {
				t.Fatal("empty key must be rejected with ErrKeyInvalid")
			}
			return
		}
		if err != nil || !ok {
			t.Fatalf("Put: ok=%v err=%v", ok, err)
		}

		// Put -> Get must return the same value.
		got, present := c.Get(k)
		if !present || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, present)
		}

		// Re-put replaces the value in place.
		if ok, err := c.Put(k, "other"); err != nil || !ok {
			t.Fatalf("re-Put: ok=%v err=%v", ok, err)
		}
		if got2, present := c.Get(k); !present || got2 != "other" {
			t.Fatalf("after re-Put: want %q, got %q ok=%v", "other", got2, present)
		}
		if c.Len() != 1 {
			t.Fatalf("re-Put must not duplicate, len=%d", c.Len())
		}

		// Remove must delete and hand back the value once.
		if got3, present := c.Remove(k); !present || got3 != "other" {
			t.Fatalf("Remove: want %q, got %q ok=%v", "other", got3, present)
		}
		if _, present := c.Get(k); present {
			t.Fatal("key must be absent after Remove")
		}

		// After removal, Put should succeed again.
		if ok, err := c.Put(k, v); err != nil || !ok {
			t.Fatalf("Put after Remove: ok=%v err=%v", ok, err)
		}
	})
}
