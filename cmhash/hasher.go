// Package cmhash contains the hashing primitives for a commutative Merkle tree:
// the user-supplied [Hasher], the canonical byte ordering [Compare],
// and the pairwise combination [Combine].
package cmhash

// Hasher is the user-defined interface for hashing items and nodes.
// The tree passes raw item data to the Leaf method to create a leaf digest,
// and it passes two digests, already in canonical order, to the Node method.
//
// To be allocation-efficient, the Hasher implementation
// must append its hash output to dst and return the extended slice,
// instead of creating a new byte slice.
// Hasher must not retain references to the dst slice.
//
// Furthermore, Hasher methods must be deterministic
// and safe to call concurrently.
type Hasher interface {
	Leaf(in []byte, dst []byte) []byte

	// Node hashes the concatenation of lo and hi.
	Node(lo, hi []byte, dst []byte) []byte
}
