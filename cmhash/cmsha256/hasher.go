package cmsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/cmerkle/cmhash"
)

const HashSize = sha256.Size

const Name = "sha256"

func init() {
	cmhash.Register(Name, cmhash.Registration{
		Hasher:   Hasher{},
		HashSize: HashSize,
	})
}

// Hasher is a [cmhash.Hasher] backed by SHA256 hashes.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(lo, hi []byte, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(lo)
	_, _ = h.Write(hi)
	return h.Sum(dst)
}
