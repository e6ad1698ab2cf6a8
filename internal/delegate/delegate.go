// Package delegate spawns the resolved external executable with the
// caller's standard streams and reports how it terminated.
//
// The child inherits the parent's environment unchanged. When the streams
// are *os.File values (the normal case) they are handed to the child as-is,
// so the child talks to the terminal directly with no buffering or copying
// in between.
package delegate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/shinji-kodama/mycli/internal/model"
)

// Streams are the standard streams given to the child.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Runner spawns child processes. It is stateless; the zero value is ready
// to use.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run spawns path with args, waits for it to terminate and returns its
// outcome.
//
// An error is returned only when the child could not be started at all
// (permission denied, executable removed after resolution, ...). A child
// that ran and failed is not an error: its status is in the Outcome.
// There is no timeout; Run blocks until the child exits.
func (r *Runner) Run(ctx context.Context, path string, args []string, s Streams) (model.Outcome, error) {
	// #nosec G204 -- forwarding user arguments verbatim is the whole point
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	err := cmd.Run()
	if err == nil {
		return model.Outcome{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode reports -1 when the child was killed by a signal.
		if code := exitErr.ExitCode(); code >= 0 {
			return model.Outcome{Code: code}, nil
		}
		return model.Outcome{Signaled: true}, nil
	}

	return model.Outcome{}, fmt.Errorf("start %s: %w", path, err)
}
