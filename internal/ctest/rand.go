// Package ctest contains helpers shared by tests across the module.
package ctest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomItemsForTest returns n items of sz bytes each,
// containing pseudorandom data derived from a seed based on the test name.
// Items are distinct with overwhelming probability when sz is at least 8.
func RandomItemsForTest(t *testing.T, n, sz int) [][]byte {
	t.Helper()

	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	mem := make([]byte, n*sz)
	if _, err := chacha.Read(mem); err != nil {
		panic(err)
	}

	out := make([][]byte, n)
	for i := range out {
		out[i] = mem[i*sz : (i+1)*sz : (i+1)*sz]
	}
	return out
}

// Shuffled returns a shuffled copy of items, seeded by the test name and seed.
// The item slices themselves are shared, not copied.
func Shuffled(t *testing.T, items [][]byte, seed uint64) [][]byte {
	t.Helper()

	h := sha256.Sum256([]byte(t.Name()))
	var key [32]byte
	copy(key[:], h[:])
	key[0] ^= byte(seed)
	key[1] ^= byte(seed >> 8)

	rng := rand.New(rand.NewChaCha8(key))

	out := append([][]byte(nil), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
