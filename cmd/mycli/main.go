// Package main is the entry point for the mycli CLI.
//
// This binary wraps the zarf command line tool: it finds zarf on PATH,
// hands it the user's arguments and standard streams, and exits with
// zarf's exit code. All functionality lives in the internal/cli package,
// which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags,
// for example:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD)" ./cmd/mycli
//
// During development they default to "dev", "none", and "unknown".
package main

import (
	"os"

	"github.com/shinji-kodama/mycli/internal/cli"
)

// version, commit, and date are set at build time via ldflags. They feed
// both `mycli version` and `mycli --version`.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps the
	// ldflags targets in main and the cobra wiring in internal/cli.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute returns the exit code instead of exiting itself: either
	// mycli's own code for its errors or the code relayed from zarf.
	// os.Exit is called only here so deferred work inside cli always runs.
	os.Exit(cli.Execute(os.Args[1:]))
}
