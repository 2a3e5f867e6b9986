// ABOUTME: version subcommand: prints the release, commit and build date set at link time
// ABOUTME: Output goes to the command writer so tests can capture it

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hecto %s (%s) built %s\n", version, commit, date)
		},
	}
}
