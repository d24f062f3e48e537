package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/pairwise/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pairwise %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.CommitSHA)
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		},
	}
}
