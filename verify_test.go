package cmerkle_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gordian-engine/cmerkle"
	"github.com/gordian-engine/cmerkle/cmhash"
	"github.com/gordian-engine/cmerkle/cmhash/cmkeccak"
	"github.com/gordian-engine/cmerkle/internal/ctest"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestVerify_handBuilt(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}

	a, b, c, d := keccak("a"), keccak("b"), keccak("c"), keccak("d")
	ab := cmhash.Combine(h, a, b, nil)
	cd := cmhash.Combine(h, c, d, nil)
	root := cmhash.Combine(h, ab, cd, nil)

	// Proof entries carry no side information,
	// so the order within each pair does not matter.
	require.True(t, cmerkle.Verify(h, [][]byte{b, cd}, root, a))
	require.True(t, cmerkle.Verify(h, [][]byte{a, cd}, root, b))
	require.True(t, cmerkle.Verify(h, [][]byte{d, ab}, root, c))

	// But the order of levels does.
	require.False(t, cmerkle.Verify(h, [][]byte{cd, b}, root, a))
}

func TestVerify_emptyProof(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}
	leaf := keccak("x")

	require.True(t, cmerkle.Verify(h, nil, leaf, leaf))
	require.False(t, cmerkle.Verify(h, nil, keccak("y"), leaf))
}

func TestVerify_tampering(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}
	cfg := keccakCfg
	cfg.OddTail = cmerkle.OddTailPromote

	tree := cmerkle.NewTree(items("test1", "test2", "test3", "test4", "test5", "test6"), cfg)
	root, err := tree.Root()
	require.NoError(t, err)

	proof, err := tree.ProveItem([]byte("test1"))
	require.NoError(t, err)
	require.True(t, cmerkle.VerifyItem(h, proof, root, []byte("test1")))

	t.Run("wrong root", func(t *testing.T) {
		t.Parallel()

		badRoot := bytes.Clone(root)
		badRoot[len(badRoot)-1] ^= 0x80
		require.False(t, cmerkle.Verify(h, proof, badRoot, keccak("test1")))
	})

	t.Run("truncated root", func(t *testing.T) {
		t.Parallel()

		require.False(t, cmerkle.Verify(h, proof, root[:31], keccak("test1")))
	})

	for i := range proof {
		t.Run(fmt.Sprintf("flipped entry %d", i), func(t *testing.T) {
			t.Parallel()

			bad := make([][]byte, len(proof))
			for j := range proof {
				bad[j] = bytes.Clone(proof[j])
			}
			bad[i][0] ^= 0x01

			require.False(t, cmerkle.Verify(h, bad, root, keccak("test1")))
		})
	}

	t.Run("dropped entry", func(t *testing.T) {
		t.Parallel()

		require.False(t, cmerkle.Verify(h, proof[1:], root, keccak("test1")))
		require.False(t, cmerkle.Verify(h, proof[:len(proof)-1], root, keccak("test1")))
	})

	t.Run("extra entry", func(t *testing.T) {
		t.Parallel()

		extra := append(append([][]byte(nil), proof...), keccak("test2"))
		require.False(t, cmerkle.Verify(h, extra, root, keccak("test1")))
	})
}

func TestVerify_doesNotModifyInputs(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}
	tree := cmerkle.NewTree(items("a", "b", "c", "d", "e"), keccakCfg)

	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.ProveItem([]byte("a"))
	require.NoError(t, err)
	leaf := keccak("a")

	origRoot := bytes.Clone(root)
	origLeaf := bytes.Clone(leaf)
	origProof := make([][]byte, len(proof))
	for i, p := range proof {
		origProof[i] = bytes.Clone(p)
	}

	_ = cmerkle.Verify(h, proof, root, leaf)

	require.Equal(t, origRoot, root)
	require.Equal(t, origLeaf, leaf)
	require.Equal(t, origProof, proof)
}

func TestTree_concurrentReaders(t *testing.T) {
	t.Parallel()

	h := cmkeccak.Hasher{}
	its := ctest.RandomItemsForTest(t, 64, 16)
	tree := cmerkle.NewTree(its, cmerkle.TreeConfig{
		Hasher:   h,
		HashSize: cmkeccak.HashSize,
		OddTail:  cmerkle.OddTailPromote,
	})

	root, err := tree.Root()
	require.NoError(t, err)

	var eg errgroup.Group
	for w := range 8 {
		eg.Go(func() error {
			for i := w; i < len(its); i += 8 {
				item := its[i]
				if !tree.ContainsItem(item) {
					return fmt.Errorf("item %d missing", i)
				}

				proof, err := tree.ProveItem(item)
				if err != nil {
					return fmt.Errorf("proving item %d: %w", i, err)
				}

				got, err := tree.Root()
				if err != nil {
					return err
				}
				if !bytes.Equal(got, root) {
					return fmt.Errorf("root changed while proving item %d", i)
				}

				if !cmerkle.VerifyItem(h, proof, root, item) {
					return fmt.Errorf("proof for item %d did not verify", i)
				}
			}
			return nil
		})
	}

	require.NoError(t, eg.Wait())
}
