package cmerkle

import (
	"encoding/hex"
	"errors"
	"strconv"
)

// ErrEmptyTree is returned from [*Tree.Root]
// when the tree was built from zero items.
var ErrEmptyTree = errors.New("tree has no root: built from zero items")

// ErrLeafNotFound matches every [LeafNotFoundError] through [errors.Is].
var ErrLeafNotFound = errors.New("leaf not found in tree")

// LeafNotFoundError is returned from [*Tree.ProveLeaf] and [*Tree.ProveItem]
// when the requested leaf digest is not in the tree.
type LeafNotFoundError struct {
	Leaf []byte
}

func (e LeafNotFoundError) Error() string {
	return "leaf " + hex.EncodeToString(e.Leaf) + " not found in tree"
}

func (e LeafNotFoundError) Is(target error) bool {
	return target == ErrLeafNotFound
}

// LeafSizeError is returned from [NewTreeFromLeaves]
// when a supplied leaf is not exactly the configured hash size.
type LeafSizeError struct {
	Index int

	Got, Want int
}

func (e LeafSizeError) Error() string {
	return "leaf " + strconv.Itoa(e.Index) +
		" has length " + strconv.Itoa(e.Got) +
		"; expected " + strconv.Itoa(e.Want)
}
