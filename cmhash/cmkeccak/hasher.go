// Package cmkeccak provides a [cmhash.Hasher] backed by legacy Keccak-256,
// the hash Ethereum tooling calls "sha3".
//
// Trees built with this Hasher are byte-for-byte compatible
// with trees built by existing web3-style Merkle tooling
// that hashes raw items and sorted node pairs with Keccak-256.
package cmkeccak

import (
	"github.com/gordian-engine/cmerkle/cmhash"
	"golang.org/x/crypto/sha3"
)

// HashSize is the size in bytes of a Keccak-256 digest.
const HashSize = 32

// Name is the name under which the Hasher is registered with [cmhash.ByName].
const Name = "keccak256"

func init() {
	cmhash.Register(Name, cmhash.Registration{
		Hasher:   Hasher{},
		HashSize: HashSize,
	})
}

// Hasher is a [cmhash.Hasher] backed by Keccak-256 hashes.
// Leaves are the plain hash of the item, with no domain separation.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(lo, hi []byte, dst []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(lo)
	_, _ = h.Write(hi)
	return h.Sum(dst)
}
