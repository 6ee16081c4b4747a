package cmerkle

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/cmerkle/cmhash"
)

// OddTail selects how a tree treats the last node of a layer with odd width.
type OddTail uint8

const (
	// OddTailSelfPair combines the unpaired node with itself.
	// Proofs skip that level, so proofs crossing it do not verify.
	OddTailSelfPair OddTail = iota

	// OddTailPromote carries the unpaired node up to the next layer unchanged.
	OddTailPromote
)

func (o OddTail) String() string {
	switch o {
	case OddTailSelfPair:
		return "self-pair"
	case OddTailPromote:
		return "promote"
	default:
		return fmt.Sprintf("OddTail(%d)", uint8(o))
	}
}

// ParseOddTail is the inverse of [OddTail.String].
func ParseOddTail(s string) (OddTail, error) {
	switch s {
	case "self-pair":
		return OddTailSelfPair, nil
	case "promote":
		return OddTailPromote, nil
	default:
		return 0, fmt.Errorf("unknown odd tail mode %q (want self-pair or promote)", s)
	}
}

// TreeConfig is the configuration for [NewTree] and [NewTreeFromLeaves].
type TreeConfig struct {
	Hasher cmhash.Hasher

	// HashSize is the size in bytes of every digest Hasher produces.
	HashSize int

	OddTail OddTail
}

func (c TreeConfig) validate() {
	if c.Hasher == nil {
		panic(errors.New("BUG: TreeConfig.Hasher must not be nil"))
	}
	if c.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: TreeConfig.HashSize must be positive (got %d)", c.HashSize,
		))
	}
	if c.OddTail > OddTailPromote {
		panic(fmt.Errorf("BUG: invalid TreeConfig.OddTail %s", c.OddTail))
	}
}
