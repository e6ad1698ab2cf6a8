package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the "version" command. It prints mycli's own
// version first, so that line appears even when zarf cannot be found, and
// then runs `zarf version`.
func NewVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mycli version %s\n", Version)
			fmt.Fprintf(out, "%s version:\n", app.Config.Binary)
			return app.Delegate(cmd, []string{"version"})
		},
	}
}
