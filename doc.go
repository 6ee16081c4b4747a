// Package cmerkle builds commutative binary Merkle trees
// over sets of items, and produces and verifies membership proofs.
//
// A [Tree] hashes every item into a leaf digest,
// removes duplicate leaves, and sorts the rest in ascending byte order.
// Parent digests are the hash of their two children in canonical order,
// smaller first, so a parent does not depend on which side
// of a pair a child came from.
// That lets a proof be a plain list of sibling digests,
// without any left or right markers,
// and lets [Verify] run without access to the tree at all.
//
// The hash primitive is supplied through [cmhash.Hasher].
// Use [cmkeccak.Hasher] for compatibility with existing Keccak-256 based trees.
//
// # Odd tails
//
// A layer of odd width leaves its last node without a sibling.
// The [OddTail] setting on [TreeConfig] decides what happens to that node.
// The default, [OddTailSelfPair], combines the node with itself,
// which matches existing trees byte for byte;
// but proofs never record the self-pairing,
// so a proof whose path crosses such a node does not verify.
// [*Tree.CrossesSelfPairedTail] reports when that is the case.
// [OddTailPromote] carries the node up unchanged instead,
// and every proof verifies.
//
// [cmkeccak.Hasher]: https://pkg.go.dev/github.com/gordian-engine/cmerkle/cmhash/cmkeccak#Hasher
package cmerkle
