package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootHashCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "root [items...]",
		Short: "Print the hex root digest of the tree over the items",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := e.buildTree(cmd, args)
			if err != nil {
				return err
			}

			root, err := tree.HexRoot()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}
	addItemsFlag(cmd)
	return cmd
}
