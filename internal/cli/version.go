package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "0.1.0-dev"

const modulePath = "github.com/mesh-intelligence/cursors"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cursorctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cursorctl v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
