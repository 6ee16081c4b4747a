package layer

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/cmerkle/cmhash"
)

// Config is the configuration for [Build].
type Config struct {
	Hasher   cmhash.Hasher
	HashSize int

	// When SelfPair is set, the node without a sibling at the end of an odd layer
	// is combined with itself to produce its parent.
	// Otherwise it is promoted unchanged.
	//
	// SelfPair also applies to a single leaf:
	// the lone leaf is combined with itself to produce the root.
	SelfPair bool
}

// Layers is the full set of layers of a Merkle tree,
// from the leaves at index 0 to the root at the last index.
//
// A Layers value is immutable once returned from [Build].
// The byte slices it returns reference its backing memory,
// and callers must not modify them.
type Layers struct {
	rows [][][]byte

	// Bit i is set when the last node of row i had no sibling
	// and was combined with itself.
	selfPaired *bitset.BitSet
}

// Widths returns the width of every layer of a tree with nLeaves leaves.
// It returns nil when nLeaves is zero.
func Widths(nLeaves int, selfPair bool) []int {
	if nLeaves < 0 {
		panic(fmt.Errorf("BUG: nLeaves must not be negative (got %d)", nLeaves))
	}
	if nLeaves == 0 {
		return nil
	}

	widths := []int{nLeaves}
	if nLeaves == 1 {
		if selfPair {
			// The lone leaf is its own odd tail.
			widths = append(widths, 1)
		}
		return widths
	}

	for n := nLeaves; n > 1; {
		n = (n + 1) / 2
		widths = append(widths, n)
	}
	return widths
}

// Build copies the leaves into a new allocation
// and derives every layer up to the root.
//
// The leaves must all be cfg.HashSize bytes long.
// Build with zero leaves returns an empty Layers value without a root.
func Build(leaves [][]byte, cfg Config) *Layers {
	if cfg.Hasher == nil {
		panic(errors.New("BUG: layer.Config.Hasher must not be nil"))
	}
	if cfg.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: layer.Config.HashSize must be positive (got %d)", cfg.HashSize,
		))
	}

	widths := Widths(len(leaves), cfg.SelfPair)

	nNodes := 0
	for _, w := range widths {
		nNodes += w
	}

	// We know the exact number of nodes and the size of every digest,
	// so back the whole tree with a single slice.
	mem := make([]byte, nNodes*cfg.HashSize)
	nodes := make([][]byte, nNodes)
	for i := range nodes {
		start := i * cfg.HashSize
		nodes[i] = mem[start : start+cfg.HashSize : start+cfg.HashSize]
	}

	l := &Layers{
		rows:       make([][][]byte, len(widths)),
		selfPaired: bitset.MustNew(uint(len(widths))),
	}

	offset := 0
	for i, w := range widths {
		l.rows[i] = nodes[offset : offset+w : offset+w]
		offset += w
	}

	if len(widths) == 0 {
		return l
	}

	for i, leaf := range leaves {
		if len(leaf) != cfg.HashSize {
			panic(fmt.Errorf(
				"BUG: leaf %d has length %d; every leaf must be %d bytes",
				i, len(leaf), cfg.HashSize,
			))
		}
		copy(l.rows[0][i], leaf)
	}

	for r := 1; r < len(l.rows); r++ {
		prev := l.rows[r-1]
		cur := l.rows[r]

		for i := 0; i < len(prev); i += 2 {
			dst := cur[i/2][:0]

			var out []byte
			switch {
			case i+1 < len(prev):
				out = cmhash.Combine(cfg.Hasher, prev[i], prev[i+1], dst)
			case cfg.SelfPair:
				// Odd tail, paired with itself.
				out = cmhash.Combine(cfg.Hasher, prev[i], nil, dst)
				l.selfPaired.Set(uint(r - 1))
			default:
				// Odd tail, promoted.
				out = append(dst, prev[i]...)
			}

			if len(out) != cfg.HashSize {
				panic(fmt.Errorf(
					"BUG: hasher produced %d bytes; configured hash size is %d",
					len(out), cfg.HashSize,
				))
			}
		}
	}

	return l
}

// Height returns the number of layers, including the leaves and the root.
// It is zero for a tree without leaves.
func (l *Layers) Height() int {
	return len(l.rows)
}

// Row returns the nodes in layer i, where 0 is the leaf layer.
func (l *Layers) Row(i int) [][]byte {
	return l.rows[i]
}

// Leaves returns the leaf layer, which is nil for an empty tree.
func (l *Layers) Leaves() [][]byte {
	if len(l.rows) == 0 {
		return nil
	}
	return l.rows[0]
}

// Root returns the root digest and true,
// or nil and false if there are no leaves.
func (l *Layers) Root() ([]byte, bool) {
	if len(l.rows) == 0 {
		return nil, false
	}
	return l.rows[len(l.rows)-1][0], true
}

// SelfPaired reports whether the last node of layer i was combined with itself.
func (l *Layers) SelfPaired(i int) bool {
	return l.selfPaired.Test(uint(i))
}

// SelfPairedRows returns the number of layers whose odd tail was self-paired.
func (l *Layers) SelfPairedRows() int {
	return int(l.selfPaired.Count())
}

// Siblings appends to dst the sibling of the node at leafIdx
// in every layer below the root, walking up one parent per layer.
// A layer where the visited node has no sibling contributes nothing.
//
// The appended slices reference the backing memory of l.
func (l *Layers) Siblings(leafIdx int, dst [][]byte) [][]byte {
	idx := leafIdx
	for r := 0; r < len(l.rows)-1; r++ {
		row := l.rows[r]
		if sib := idx ^ 1; sib < len(row) {
			dst = append(dst, row[sib])
		}
		idx >>= 1
	}
	return dst
}

// CrossesSelfPaired reports whether the path from leafIdx to the root
// passes through a node that was combined with itself.
func (l *Layers) CrossesSelfPaired(leafIdx int) bool {
	idx := leafIdx
	for r := 0; r < len(l.rows)-1; r++ {
		if idx == len(l.rows[r])-1 && l.selfPaired.Test(uint(r)) {
			return true
		}
		idx >>= 1
	}
	return false
}
