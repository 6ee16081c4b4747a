package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Write a default TOML configuration file to path,
or to config.toml in the current directory.
An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),

		// Writing a config must not depend on loading one.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },

		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.toml"
			if len(args) == 1 {
				path = args[0]
			}

			if err := WriteConfig(path, DefaultConfig()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return err
		},
	}
}
