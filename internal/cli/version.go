package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the build version, overridden at release time via
// -ldflags "-X github.com/passforge/passforge-go/internal/cli.Version=...".
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passforge version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "passforge %s\n", Version)
		},
	}
}
