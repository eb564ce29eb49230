// Package sizeof derives the byte cost of common cache payload types.
// It is the default cost source for size-bounded caches.
package sizeof

import (
	"errors"
	"fmt"
)

// ErrUnsized is returned when a value has no derivable byte size.
// Supply an explicit cost (or a custom cost function) for such values.
var ErrUnsized = errors.New("sizeof: no derivable byte size")

// Of returns the byte size of recognized text/binary payloads.
// Supported: string, []byte, byte, fixed [16|32|64]byte arrays, and
// fmt.Stringer (sized by its rendered form). Anything else yields
// ErrUnsized rather than a guess: silently mis-costing entries would
// corrupt the capacity ledger.
func Of(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		return int64(len(x)), nil
	case []byte:
		return int64(len(x)), nil
	case byte:
		return 1, nil
	case [16]byte:
		return 16, nil
	case [32]byte:
		return 32, nil
	case [64]byte:
		return 64, nil
	case fmt.Stringer:
		return int64(len(x.String())), nil
	default:
		return 0, fmt.Errorf("%w for %T", ErrUnsized, v)
	}
}
