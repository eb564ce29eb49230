package sizeof

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_RecognizedPayloads(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    any
		want int64
	}{
		{"string", "hello", 5},
		{"empty string", "", 0},
		{"bytes", []byte{1, 2, 3}, 3},
		{"nil bytes", []byte(nil), 0},
		{"single byte", byte('x'), 1},
		{"array16", [16]byte{}, 16},
		{"array32", [32]byte{}, 32},
		{"array64", [64]byte{}, 64},
		{"stringer", net.IPv4(127, 0, 0, 1), int64(len("127.0.0.1"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Of(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOf_UnsizedValues(t *testing.T) {
	t.Parallel()

	for _, v := range []any{42, 3.14, struct{ a int }{1}, []int{1, 2}, nil} {
		_, err := Of(v)
		assert.ErrorIs(t, err, ErrUnsized, "%T must not be sizable", v)
	}
}
