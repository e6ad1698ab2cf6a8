package cli

import (
	"github.com/spf13/cobra"
)

// NewZarfCommand creates the "zarf" command, which forwards every token
// after it to the zarf executable.
func NewZarfCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zarf [args...]",
		Short: "Run Zarf commands",
		Long: `Run the zarf executable with the given arguments.

Every argument, including ones starting with "-", is passed through
unchanged and in order. With no arguments, "zarf --help" is run.

Examples:
  mycli zarf package create . --confirm
  mycli zarf tools kubectl get pods -A`,

		// Raw passthrough: cobra must not interpret --help, -v or any other
		// flag-looking token after "zarf".
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Delegate(cmd, zarfArgs(args))
		},
	}
}

// zarfArgs returns the arguments to forward. An empty invocation asks zarf
// for its help text.
func zarfArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	return args
}
