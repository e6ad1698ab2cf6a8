package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mycli/internal/delegate"
	"github.com/shinji-kodama/mycli/internal/model"
	"github.com/shinji-kodama/mycli/internal/resolve"
)

// Delegate resolves the configured binary and runs it with args, wiring
// the child to cmd's standard streams.
//
// It returns nil when the child exits 0, *model.ExitStatus for any other
// child outcome, and *model.CLIError when the binary cannot be found or
// started. Resolution happens on every call.
func (a *App) Delegate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	binary := a.Config.Binary

	res, err := a.Resolver.Resolve(ctx, binary)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) {
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("'%s' command not found in PATH", binary)).
				WithHint(fmt.Sprintf("Please ensure %s is installed and available in your PATH", binary))
		}
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to locate %s", binary), err)
	}
	a.verbosef("resolved %s to %s via %s", binary, res.Path, res.Strategy)

	outcome, err := a.Runner.Run(ctx, res.Path, args, delegate.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to execute %s", binary), errors.Unwrap(err))
	}
	a.verbosef("%s finished: %s", binary, outcome)

	if code := outcome.ExitCode(); code != model.ExitSuccess {
		return &model.ExitStatus{Code: code}
	}
	return nil
}
