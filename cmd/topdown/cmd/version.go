package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/topdown/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.Info().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
