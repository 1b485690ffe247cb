package cmd

import (
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands built into the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeBuiltins(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
