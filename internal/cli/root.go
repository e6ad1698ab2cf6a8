// Package cli implements the cobra command tree for mycli.
//
// mycli recognises exactly two subcommands, zarf and version, each defined
// in its own file. This file defines the root command, which handles the
// two remaining cases (no subcommand, unknown subcommand) and owns error
// rendering and exit code mapping.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mycli/internal/config"
	"github.com/shinji-kodama/mycli/internal/delegate"
	"github.com/shinji-kodama/mycli/internal/model"
	"github.com/shinji-kodama/mycli/internal/resolve"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// App carries everything the commands need for one invocation.
type App struct {
	// Config holds the binary name, resolution settings and verbose flag.
	Config *config.Config

	// Resolver locates the binary before every delegation. Tests replace
	// it with fixed strategies.
	Resolver *resolve.Resolver

	// Runner spawns the resolved binary and waits for it.
	Runner *delegate.Runner

	// logOut receives [verbose] lines. It is bound to the command's stderr
	// once cobra has picked the command to run.
	logOut io.Writer
}

// NewApp creates an App using the stock resolution strategies configured
// by cfg.
func NewApp(cfg *config.Config) *App {
	a := &App{
		Config:   cfg,
		Resolver: resolve.Default(cfg.LookupCommand, cfg.ProbeArgs),
		Runner:   delegate.NewRunner(),
	}
	a.Resolver.OnMiss = func(strategy, target string) {
		a.verbosef("%s did not resolve %q", strategy, target)
	}
	return a
}

// NewRootCommand creates and configures the root cobra command.
//
// The root command only runs when no subcommand matched: with no arguments
// it prints help and fails, with any other first token it reports an
// unknown subcommand.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use: "mycli",

		// Short appears in the command list; Long heads the full help text
		// printed when mycli is run without a subcommand.
		Short: "A CLI tool with Zarf integration",
		Long: `mycli wraps the zarf command line tool.

Arguments after "zarf" are handed to the zarf executable found on PATH
exactly as given, and mycli exits with zarf's exit code.`,

		// Unknown first tokens must reach RunE instead of failing in cobra's
		// own argument validation.
		Args: cobra.ArbitraryArgs,

		// Unknown flags are ignored so that `mycli frobnicate --x` reports the
		// unknown subcommand rather than the flag.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},

		// SilenceUsage and SilenceErrors leave all error output to Run.
		SilenceUsage:  true,
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Only zarf, version and cobra's help are subcommands.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		// PersistentPreRun runs for every command, after cobra has decided
		// which one to execute. Binding the verbose log to that command's
		// stderr keeps test output captured by SetErr.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.logOut = cmd.ErrOrStderr()
			if app.Config.Path != "" {
				app.verbosef("loaded config from %s", app.Config.Path)
			}
		},

		// RunE only sees positional tokens here when a root flag came first
		// (`mycli --x frobnicate`); a leading unknown name is caught in Run.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Help goes to stdout, but running without a subcommand is
				// still a failure.
				_ = cmd.Help()
				return &model.ExitStatus{Code: model.ExitGeneralError}
			}
			return unknownSubcommandError(args[0])
		},
	}

	rootCmd.AddCommand(NewZarfCommand(app))
	rootCmd.AddCommand(NewVersionCommand(app))

	return rootCmd
}

// Execute loads configuration, runs mycli against args with the process's
// own standard streams and returns the exit code.
// This is the main entry point called from main.go.
func Execute(args []string) int {
	// The process's own *os.File streams are bound explicitly so the child
	// receives the real descriptors rather than copies through pipes.
	streams := delegate.StdStreams()

	cfg, err := config.FromEnv()
	if err != nil {
		return exitCode(streams.Err, err)
	}

	rootCmd := NewRootCommand(NewApp(cfg))
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)
	return Run(rootCmd, args)
}

// Run executes rootCmd with args and translates the result into an exit
// code, printing any diagnostic to the command's stderr.
func Run(rootCmd *cobra.Command, args []string) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	// cobra would parse root flags such as --help or --version that follow
	// an unknown name and never reach RunE, so the first token is checked
	// before cobra sees the arguments. Everything after the name is ignored.
	if name, ok := unknownSubcommand(rootCmd, args); ok {
		return exitCode(rootCmd.ErrOrStderr(), unknownSubcommandError(name))
	}

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return exitCode(rootCmd.ErrOrStderr(), err)
}

// unknownSubcommand reports whether the first token names a command that
// rootCmd does not have. Flags are left to cobra. "help" is always known
// because cobra only adds its help command during execution.
func unknownSubcommand(rootCmd *cobra.Command, args []string) (string, bool) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", false
	}

	name := args[0]
	if name == "help" {
		return "", false
	}
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return "", false
		}
	}
	return name, true
}

// unknownSubcommandError is the single-line rejection for an unrecognised
// subcommand. No resolution or delegation happens after it.
func unknownSubcommandError(name string) error {
	return model.NewCLIError(model.ExitGeneralError,
		fmt.Sprintf("unknown subcommand %q", name))
}

// exitCode inspects errors returned by cobra commands and translates them
// into OS exit codes. ExitStatus is silent; CLIError carries its own code;
// other errors default to exit code 1.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return int(model.ExitSuccess)
	}

	var status *model.ExitStatus
	if errors.As(err, &status) {
		return int(status.Code)
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err, cliErr.Hint)
		return int(cliErr.Code)
	}

	printError(w, err.Error(), nil, "")
	return int(model.ExitGeneralError)
}

// printError writes "Error: <message>[: <underlying>]" and, when present,
// the hint on a second line. The prefix is coloured only when w is a
// terminal.
func printError(w io.Writer, message string, underlying error, hint string) {
	prefix := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Render("Error:")

	if underlying != nil {
		fmt.Fprintf(w, "%s %s: %v\n", prefix, message, underlying)
	} else {
		fmt.Fprintf(w, "%s %s\n", prefix, message)
	}
	if hint != "" {
		fmt.Fprintln(w, hint)
	}
}

// verbosef prints a message to stderr only when verbose mode is enabled.
func (a *App) verbosef(format string, args ...interface{}) {
	if !a.Config.Verbose || a.logOut == nil {
		return
	}
	fmt.Fprintf(a.logOut, "[verbose] "+format+"\n", args...)
}
