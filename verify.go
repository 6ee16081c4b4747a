package cmerkle

import (
	"bytes"

	"github.com/gordian-engine/cmerkle/cmhash"
)

// Verify reports whether proof links leaf to root.
//
// Starting from leaf, every proof entry is hashed together with the running digest,
// the smaller of the two first, and the final digest must equal root exactly.
// Verify never pairs a digest with itself,
// because proofs never carry a self-pairing step.
//
// Verify does not need the tree that produced the proof,
// and it is safe to call concurrently.
func Verify(h cmhash.Hasher, proof [][]byte, root, leaf []byte) bool {
	// Alternate between two scratch buffers
	// so that the running digest is never both input and output.
	var bufs [2][]byte
	acc := leaf
	for i, sibling := range proof {
		b := &bufs[i&1]
		if cmhash.Compare(acc, sibling) < 0 {
			*b = h.Node(acc, sibling, (*b)[:0])
		} else {
			*b = h.Node(sibling, acc, (*b)[:0])
		}
		acc = *b
	}

	return bytes.Equal(acc, root)
}

// VerifyItem hashes item with h and then calls [Verify] with the resulting leaf.
func VerifyItem(h cmhash.Hasher, proof [][]byte, root, item []byte) bool {
	return Verify(h, proof, root, h.Leaf(item, nil))
}
