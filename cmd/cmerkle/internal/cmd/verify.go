package cmd

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/cmerkle"
	"github.com/spf13/cobra"
)

// ErrInvalidProof is returned from the verify command
// when the proof does not link the leaf to the root.
var ErrInvalidProof = errors.New("invalid proof")

func newVerifyCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify --root ROOT (--item ITEM | --leaf LEAF) [--proof P1,P2,...]",
		Short: "Check a membership proof against a root, without the tree",
		Long: `Check a membership proof against a root, without the tree.
Prints "valid" and exits zero when the proof links the leaf to the root;
otherwise exits non-zero.

An empty proof is valid only when the leaf is the root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			rootHex, _ := flags.GetString("root")
			root, err := e.decodeDigest("root", rootHex)
			if err != nil {
				return err
			}

			leaf, err := e.targetLeaf(cmd)
			if err != nil {
				return err
			}

			proofHex, _ := flags.GetStringSlice("proof")
			proof := make([][]byte, len(proofHex))
			for i, p := range proofHex {
				proof[i], err = e.decodeDigest(fmt.Sprintf("proof entry %d", i), p)
				if err != nil {
					return err
				}
			}

			if !cmerkle.Verify(e.treeCfg.Hasher, proof, root, leaf) {
				e.log.Info("Proof did not verify", "root", rootHex, "proof_len", len(proof))
				return ErrInvalidProof
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}

	cmd.Flags().String("root", "", "Hex root digest")
	cmd.Flags().StringSlice("proof", nil, "Comma-separated hex proof entries, leaf level first")
	_ = cmd.MarkFlagRequired("root")
	addTargetFlags(cmd)

	return cmd
}
