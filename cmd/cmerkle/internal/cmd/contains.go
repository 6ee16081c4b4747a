package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newContainsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contains --item ITEM [items...]",
		Short: "Print whether the tree over the items contains one item",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaf, err := e.targetLeaf(cmd)
			if err != nil {
				return err
			}

			tree, err := e.buildTree(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.ContainsLeaf(leaf))
			return err
		},
	}
	addItemsFlag(cmd)
	addTargetFlags(cmd)
	return cmd
}
