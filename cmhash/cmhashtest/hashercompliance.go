// Package cmhashtest contains a compliance suite
// that every [cmhash.Hasher] implementation should pass.
package cmhashtest

import (
	"bytes"
	"testing"

	"github.com/gordian-engine/cmerkle/cmhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h cmhash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := h.Leaf([]byte("deterministic_data"), make([]byte, 0, sz))
		dst02 := h.Leaf([]byte("deterministic_data"), make([]byte, 0, sz))

		require.Len(t, dst01, sz)
		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := h.Leaf([]byte("hello"), make([]byte, 0, sz))
		dst02 := h.Leaf([]byte("world"), make([]byte, 0, sz))

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("leaf appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		prefix := []byte("prefix")
		dst := h.Leaf([]byte("data"), bytes.Clone(prefix))

		require.Len(t, dst, len(prefix)+sz)
		require.Equal(t, prefix, dst[:len(prefix)])
		require.Equal(t, h.Leaf([]byte("data"), nil), dst[len(prefix):])
	})

	t.Run("leaf writes into spare capacity", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		mem := make([]byte, sz)
		out := h.Leaf([]byte("in place"), mem[:0])

		require.Equal(t, mem, out)
		require.Same(t, &mem[0], &out[0])
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		lo := h.Leaf([]byte("lo"), nil)
		hi := h.Leaf([]byte("hi"), nil)

		dst01 := h.Node(lo, hi, make([]byte, 0, sz))
		dst02 := h.Node(lo, hi, make([]byte, 0, sz))

		require.Len(t, dst01, sz)
		require.Equal(t, dst01, dst02)
	})

	t.Run("node respects operand order", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		a := h.Leaf([]byte("a"), nil)
		b := h.Leaf([]byte("b"), nil)

		// Canonical ordering is the caller's job,
		// so the raw Node method must distinguish the two orders.
		require.NotEqual(t, h.Node(a, b, nil), h.Node(b, a, nil))
	})

	t.Run("node hashes the concatenation", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		lo := []byte("concat")
		hi := []byte("enation")

		require.Equal(t, h.Leaf([]byte("concatenation"), nil), h.Node(lo, hi, nil))
	})
}
