package cmerkle

import (
	"bytes"
	"encoding/hex"
	"slices"

	"github.com/gordian-engine/cmerkle/cmhash"
	"github.com/gordian-engine/cmerkle/internal/merkle/layer"
)

// Tree is a binary Merkle tree over a deduplicated, sorted set of leaf digests.
//
// Create a Tree with [NewTree] or [NewTreeFromLeaves].
// A Tree is immutable once created,
// so its methods are safe to call concurrently.
// Every digest it returns is a fresh copy that the caller may keep or modify.
type Tree struct {
	layers *layer.Layers

	hasher   cmhash.Hasher
	hashSize int

	oddTail OddTail
}

// NewTree hashes every item with cfg.Hasher
// and builds a tree over the distinct resulting leaves.
//
// The order of items and any repetition among them
// have no effect on the resulting tree.
// NewTree with zero items returns an empty tree, which has no root.
func NewTree(items [][]byte, cfg TreeConfig) *Tree {
	cfg.validate()

	// Hash every item into one allocation,
	// before we know how many distinct leaves remain.
	mem := make([]byte, len(items)*cfg.HashSize)
	leaves := make([][]byte, len(items))
	for i, item := range items {
		start := i * cfg.HashSize
		leaves[i] = cfg.Hasher.Leaf(item, mem[start:start:start+cfg.HashSize])
	}

	return buildTree(leaves, cfg)
}

// NewTreeFromLeaves builds a tree over leaf digests that were hashed already.
// Every leaf must be exactly cfg.HashSize bytes,
// otherwise NewTreeFromLeaves returns a [LeafSizeError].
//
// As with [NewTree], order and duplicates among leaves do not matter.
// The leaves slice is not modified.
func NewTreeFromLeaves(leaves [][]byte, cfg TreeConfig) (*Tree, error) {
	cfg.validate()

	for i, leaf := range leaves {
		if len(leaf) != cfg.HashSize {
			return nil, LeafSizeError{Index: i, Got: len(leaf), Want: cfg.HashSize}
		}
	}

	return buildTree(slices.Clone(leaves), cfg), nil
}

// buildTree sorts and deduplicates leaves in place,
// then derives every layer up to the root.
func buildTree(leaves [][]byte, cfg TreeConfig) *Tree {
	slices.SortFunc(leaves, cmhash.Compare)
	leaves = slices.CompactFunc(leaves, bytes.Equal)

	return &Tree{
		layers: layer.Build(leaves, layer.Config{
			Hasher:   cfg.Hasher,
			HashSize: cfg.HashSize,
			SelfPair: cfg.OddTail == OddTailSelfPair,
		}),

		hasher:   cfg.Hasher,
		hashSize: cfg.HashSize,

		oddTail: cfg.OddTail,
	}
}

// Root returns the root digest of the tree,
// or [ErrEmptyTree] if the tree has no leaves.
func (t *Tree) Root() ([]byte, error) {
	root, ok := t.layers.Root()
	if !ok {
		return nil, ErrEmptyTree
	}
	return bytes.Clone(root), nil
}

// HexRoot returns the root digest as a lowercase hex string,
// or [ErrEmptyTree] if the tree has no leaves.
func (t *Tree) HexRoot() (string, error) {
	root, ok := t.layers.Root()
	if !ok {
		return "", ErrEmptyTree
	}
	return hex.EncodeToString(root), nil
}

// Len returns the number of distinct leaves in the tree.
func (t *Tree) Len() int {
	return len(t.layers.Leaves())
}

// Height returns the number of layers in the tree,
// counting both the leaf layer and the root layer.
// An empty tree has height zero.
func (t *Tree) Height() int {
	return t.layers.Height()
}

// OddTail returns the odd tail mode the tree was built with.
func (t *Tree) OddTail() OddTail {
	return t.oddTail
}

// Leaves returns a copy of the sorted leaf digests.
func (t *Tree) Leaves() [][]byte {
	return cloneDigests(t.layers.Leaves())
}

// Layer returns a copy of the digests in layer i,
// where layer 0 holds the leaves and layer Height()-1 holds the root.
// Layer panics if i is out of range.
func (t *Tree) Layer(i int) [][]byte {
	return cloneDigests(t.layers.Row(i))
}

// ContainsLeaf reports whether leaf is one of the tree's leaf digests.
func (t *Tree) ContainsLeaf(leaf []byte) bool {
	_, found := t.leafIndex(leaf)
	return found
}

// ContainsItem reports whether the hash of item is one of the tree's leaf digests.
func (t *Tree) ContainsItem(item []byte) bool {
	return t.ContainsLeaf(t.hashItem(item))
}

func (t *Tree) leafIndex(leaf []byte) (int, bool) {
	return slices.BinarySearchFunc(t.layers.Leaves(), leaf, cmhash.Compare)
}

func (t *Tree) hashItem(item []byte) []byte {
	return t.hasher.Leaf(item, make([]byte, 0, t.hashSize))
}

// cloneDigests copies every digest in src into a single new allocation.
func cloneDigests(src [][]byte) [][]byte {
	if len(src) == 0 {
		return nil
	}

	sz := len(src[0])
	mem := make([]byte, len(src)*sz)
	out := make([][]byte, len(src))
	for i, d := range src {
		out[i] = mem[i*sz : (i+1)*sz : (i+1)*sz]
		copy(out[i], d)
	}
	return out
}
