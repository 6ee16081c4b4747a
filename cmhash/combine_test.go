package cmhash_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gordian-engine/cmerkle/cmhash"
	"github.com/gordian-engine/cmerkle/cmhash/cmkeccak"
	"github.com/gordian-engine/cmerkle/cmhash/cmsha256"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b []byte
		want int
	}{
		{name: "equal", a: []byte{1, 2, 3}, b: []byte{1, 2, 3}, want: 0},
		{name: "ascii less", a: []byte("Merkle"), b: []byte("tree"), want: -1},
		{name: "ascii greater", a: []byte("tree"), b: []byte("Merkle"), want: 1},
		{name: "first byte decides", a: []byte{0x01, 0xff}, b: []byte{0x02, 0x00}, want: -1},

		// Bytes with the high bit set must compare as 0x80-0xff,
		// never as negative values.
		{name: "high bit greater than low", a: []byte{0x80}, b: []byte{0x7f}, want: 1},
		{name: "low less than high bit", a: []byte{0x00}, b: []byte{0xff}, want: -1},
		{name: "high bits ordered", a: []byte{0x80, 0x00}, b: []byte{0xff, 0x00}, want: -1},
		{name: "high bit in later byte", a: []byte{0x10, 0x7f}, b: []byte{0x10, 0x80}, want: -1},

		{name: "prefix sorts first", a: []byte{0xaa}, b: []byte{0xaa, 0x00}, want: -1},
		{name: "empty sorts first", a: nil, b: []byte{0x00}, want: -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, cmhash.Compare(tc.a, tc.b))
			require.Equal(t, -tc.want, cmhash.Compare(tc.b, tc.a))
		})
	}
}

func TestCompare_unsignedOrder(t *testing.T) {
	t.Parallel()

	// Every pair of single bytes must order the same way as their unsigned values.
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			got := cmhash.Compare([]byte{byte(i)}, []byte{byte(j)})

			var want int
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Fatalf("Compare(%#x, %#x) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestCombine_commutative(t *testing.T) {
	t.Parallel()

	for _, hc := range []struct {
		name string
		h    cmhash.Hasher
	}{
		{name: "keccak256", h: cmkeccak.Hasher{}},
		{name: "sha256", h: cmsha256.Hasher{}},
	} {
		t.Run(hc.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(1, 2))
			for i := range 64 {
				a := make([]byte, 32)
				b := make([]byte, 32)
				for j := range a {
					a[j] = byte(rng.UintN(256))
					b[j] = byte(rng.UintN(256))
				}
				if i%4 == 0 {
					// Make sure the high-bit cases get coverage.
					a[0] |= 0x80
					b[0] &^= 0x80
				}

				ab := cmhash.Combine(hc.h, a, b, nil)
				ba := cmhash.Combine(hc.h, b, a, nil)
				require.Equal(t, ab, ba, fmt.Sprintf("iteration %d", i))
			}
		})
	}
}

func TestCombine_smallerFirst(t *testing.T) {
	t.Parallel()

	h := cmsha256.Hasher{}

	lo := []byte{0x7f, 0xff}
	hi := []byte{0x80, 0x00}

	require.Equal(t, h.Node(lo, hi, nil), cmhash.Combine(h, hi, lo, nil))
	require.NotEqual(t, h.Node(hi, lo, nil), cmhash.Combine(h, hi, lo, nil))
}

func TestCombine_selfPair(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}
	x := h.Leaf([]byte("x"), nil)

	got := cmhash.Combine(h, x, nil, nil)
	require.Equal(t, h.Node(x, x, nil), got)
	require.NotEqual(t, x, got)
}

func TestCombine_appendsToDst(t *testing.T) {
	t.Parallel()

	h := cmsha256.Hasher{}
	a := h.Leaf([]byte("a"), nil)
	b := h.Leaf([]byte("b"), nil)

	mem := make([]byte, cmsha256.HashSize)
	out := cmhash.Combine(h, a, b, mem[:0])
	require.Same(t, &mem[0], &out[0])
	require.Equal(t, cmhash.Combine(h, a, b, nil), mem)
}
