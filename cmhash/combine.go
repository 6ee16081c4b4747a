package cmhash

import "bytes"

// Compare orders two digests lexicographically,
// treating every byte as an unsigned value in 0-255.
// The first differing byte decides the result;
// when one digest is a prefix of the other, the shorter one sorts first.
//
// The result is -1, 0, or +1, as with [bytes.Compare].
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Combine appends the parent digest of a and b to dst and returns it.
//
// The operands are placed in canonical order before hashing,
// so Combine(h, a, b, dst) and Combine(h, b, a, dst) produce the same digest.
// A nil b means a has no sibling, and a is combined with itself.
func Combine(h Hasher, a, b []byte, dst []byte) []byte {
	if b == nil {
		return h.Node(a, a, dst)
	}

	if Compare(a, b) > 0 {
		a, b = b, a
	}
	return h.Node(a, b, dst)
}
