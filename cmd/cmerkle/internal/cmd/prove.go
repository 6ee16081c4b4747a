package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newProveCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove --item ITEM [items...]",
		Short: "Print the membership proof for one item, one hex digest per line",
		Long: `Print the membership proof for one item, one hex digest per line.
The proved item must be among the items the tree is built from.

Use --leaf instead of --item to prove an already hashed leaf.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			leaf, err := e.targetLeaf(cmd)
			if err != nil {
				return err
			}

			tree, err := e.buildTree(cmd, args)
			if err != nil {
				return err
			}

			proof, err := tree.ProveLeaf(leaf)
			if err != nil {
				return err
			}

			crosses, err := tree.CrossesSelfPairedTail(leaf)
			if err != nil {
				return err
			}
			if crosses {
				e.log.Warn(
					"Proof path crosses a self-paired odd tail and will not verify; use --odd-tail=promote for verifiable proofs",
					"leaf", hex.EncodeToString(leaf),
				)
			}

			out := cmd.OutOrStdout()
			for _, p := range proof {
				if _, err := fmt.Fprintln(out, hex.EncodeToString(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addItemsFlag(cmd)
	addTargetFlags(cmd)
	return cmd
}

// addTargetFlags registers the mutually exclusive --item and --leaf flags.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("item", "", "Raw item to look up")
	cmd.Flags().String("leaf", "", "Hex leaf digest to look up")
	cmd.MarkFlagsMutuallyExclusive("item", "leaf")
}

// targetLeaf returns the leaf digest named by --item or --leaf.
func (e *env) targetLeaf(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()

	if flags.Changed("leaf") {
		s, _ := flags.GetString("leaf")
		return e.decodeDigest("leaf", s)
	}

	if flags.Changed("item") {
		s, _ := flags.GetString("item")
		return e.treeCfg.Hasher.Leaf([]byte(s), nil), nil
	}

	return nil, errors.New("one of --item or --leaf is required")
}
