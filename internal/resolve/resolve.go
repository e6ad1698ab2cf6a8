package resolve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned by Resolver.Resolve when no strategy located the
// target.
var ErrNotFound = errors.New("executable not found")

// Strategy is one method of locating an executable by name.
//
// Resolve returns the path or name to spawn and true on a hit. Failures of
// any kind are reported as a miss; strategies never return errors because
// the next strategy is always worth trying.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, target string) (string, bool)
}

// StrategyFunc adapts a plain function into a Strategy.
type StrategyFunc struct {
	Label string
	Fn    func(ctx context.Context, target string) (string, bool)
}

// Name returns the label given to the function.
func (f StrategyFunc) Name() string { return f.Label }

// Resolve calls the wrapped function.
func (f StrategyFunc) Resolve(ctx context.Context, target string) (string, bool) {
	return f.Fn(ctx, target)
}

// Lookup resolves a target by running a PATH lookup utility such as
// `which`. The utility must exit successfully and print a non-empty path.
type Lookup struct {
	// Command is the lookup utility, e.g. "which".
	Command string
}

// Name identifies the strategy in verbose output.
func (l Lookup) Name() string { return l.Command }

// Resolve runs `<Command> <target>` and returns its trimmed stdout.
func (l Lookup) Resolve(ctx context.Context, target string) (string, bool) {
	// #nosec G204 -- the lookup utility comes from configuration, not from argv
	cmd := exec.CommandContext(ctx, l.Command, target)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// A missing lookup utility, a non-zero status and empty output are all
	// the same thing here: a miss.
	if err := cmd.Run(); err != nil {
		return "", false
	}

	path := strings.TrimSpace(stdout.String())
	if path == "" {
		return "", false
	}
	return path, true
}

// Probe resolves a target by invoking it directly with Args. Output is
// discarded and stdin is the null device; only the exit status matters.
type Probe struct {
	// Args are passed to the target, e.g. ["--version"].
	Args []string
}

// Name identifies the strategy in verbose output.
func (p Probe) Name() string {
	return "probe " + strings.Join(p.Args, " ")
}

// Resolve runs `<target> <Args...>` and returns the bare target name when
// it exits successfully.
func (p Probe) Resolve(ctx context.Context, target string) (string, bool) {
	// #nosec G204 -- target is the configured binary name
	cmd := exec.CommandContext(ctx, target, p.Args...)

	// Leaving Stdin/Stdout/Stderr nil connects them to os.DevNull.
	if err := cmd.Run(); err != nil {
		return "", false
	}
	return target, true
}

// Result is a successful resolution.
type Result struct {
	// Path is what gets spawned: an absolute path or a bare name.
	Path string

	// Strategy names the strategy that produced Path.
	Strategy string
}

// Resolver tries its strategies in order.
type Resolver struct {
	Strategies []Strategy

	// OnMiss, when set, is called for every strategy that did not resolve
	// the target. It is used for verbose logging.
	OnMiss func(strategy, target string)
}

// New creates a Resolver trying the given strategies in order.
func New(strategies ...Strategy) *Resolver {
	return &Resolver{Strategies: strategies}
}

// Default returns the stock two-step resolver: lookupCommand first, then a
// direct probe with probeArgs.
func Default(lookupCommand string, probeArgs []string) *Resolver {
	return New(
		Lookup{Command: lookupCommand},
		Probe{Args: probeArgs},
	)
}

// Resolve returns the first hit among the strategies. Nothing is cached;
// every call runs the strategies again.
func (r *Resolver) Resolve(ctx context.Context, target string) (Result, error) {
	for _, s := range r.Strategies {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if path, ok := s.Resolve(ctx, target); ok {
			return Result{Path: path, Strategy: s.Name()}, nil
		}
		if r.OnMiss != nil {
			r.OnMiss(s.Name(), target)
		}
	}
	return Result{}, fmt.Errorf("%w: %s", ErrNotFound, target)
}
