package lxc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// Controls whether a spawned command's output reaches the terminal.
//
// The value is fixed when the [Runner] is constructed and applies for its
// whole lifetime; there is no process-wide verbosity state.
type Verbosity struct {
	Stdout bool // Inherit the child's stdout. False discards it.
	Stderr bool // Inherit the child's stderr. False discards it.
}

// Runs rendered command lines as external processes.
type Runner interface {

	// Spawns the command line and blocks until it exits. A launch failure
	// and a non-zero exit both return an [ErrExec]-wrapped error.
	Run(ctx context.Context, cmdline string) error

	// Like Run, but captures and returns the command's stdout regardless
	// of the verbosity.
	Output(ctx context.Context, cmdline string) (string, error)
}

// Runner backed by os/exec: one subprocess per call, spawn and wait.
type execRunner struct {
	verbosity Verbosity
}

// Creates the standard process-spawning [Runner].
func NewRunner(verbosity Verbosity) Runner {
	return &execRunner{verbosity: verbosity}
}

// Spawns the command line and blocks until it exits.
func (r *execRunner) Run(ctx context.Context, cmdline string) error {
	cmd, err := r.command(ctx, cmdline)
	if err != nil {
		return err
	}
	if r.verbosity.Stdout {
		cmd.Stdout = os.Stdout
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExec, firstWord(cmdline), err)
	}
	return nil
}

// Spawns the command line, blocks until it exits, and returns its stdout.
func (r *execRunner) Output(ctx context.Context, cmdline string) (string, error) {
	cmd, err := r.command(ctx, cmdline)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExec, firstWord(cmdline), err)
	}
	return out.String(), nil
}

// Splits the command line into an executable and arguments and prepares the
// subprocess. Stderr is inherited or discarded according to the verbosity.
func (r *execRunner) command(ctx context.Context, cmdline string) (*exec.Cmd, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed command line %q: %w", ErrExec, cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty command line", ErrExec)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if r.verbosity.Stderr {
		cmd.Stderr = os.Stderr
	}
	return cmd, nil
}

// Returns the executable part of a command line, for error messages.
func firstWord(cmdline string) string {
	if i := strings.IndexByte(cmdline, ' '); i > 0 {
		return cmdline[:i]
	}
	return cmdline
}
