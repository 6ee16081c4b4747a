package cmerkle

import "bytes"

// ProveLeaf returns the membership proof for leaf:
// the sibling digests met while climbing from leaf to the root, in order.
// A level where the climbing node has no sibling contributes no entry,
// so the proof may be shorter than the tree height minus one.
//
// If leaf is not in the tree, ProveLeaf returns a [LeafNotFoundError].
func (t *Tree) ProveLeaf(leaf []byte) ([][]byte, error) {
	idx, found := t.leafIndex(leaf)
	if !found {
		return nil, LeafNotFoundError{Leaf: bytes.Clone(leaf)}
	}

	// Siblings returns views into the tree's backing memory,
	// and the proof must not alias the tree.
	siblings := t.layers.Siblings(idx, make([][]byte, 0, t.Height()))
	return cloneDigests(siblings), nil
}

// ProveItem hashes item and returns the membership proof for the resulting leaf.
// See [*Tree.ProveLeaf].
func (t *Tree) ProveItem(item []byte) ([][]byte, error) {
	return t.ProveLeaf(t.hashItem(item))
}

// CrossesSelfPairedTail reports whether the path from leaf to the root
// passes through a node that was combined with itself.
//
// Under [OddTailSelfPair], the proof for such a leaf does not verify,
// because proofs never record the self-pairing.
// Under [OddTailPromote], CrossesSelfPairedTail always reports false.
//
// If leaf is not in the tree, CrossesSelfPairedTail returns a [LeafNotFoundError].
func (t *Tree) CrossesSelfPairedTail(leaf []byte) (bool, error) {
	idx, found := t.leafIndex(leaf)
	if !found {
		return false, LeafNotFoundError{Leaf: bytes.Clone(leaf)}
	}
	return t.layers.CrossesSelfPaired(idx), nil
}
