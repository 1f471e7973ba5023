// Package execx runs external commands for the generation pipeline.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	fferrors "github.com/flaskforge/cli/internal/errors"
)

// Command describes one synchronous external invocation.
//
// Built-in stages (environment creation, dependency install, database
// migration) pass Argv so arguments are handed to the process as an explicit
// ordered list. User-supplied hooks are shell command lines and pass Line,
// which is interpreted by `sh -c`.
type Command struct {
	// Argv is the program and its arguments. Takes precedence over Line.
	Argv []string

	// Line is a shell command line, run via `sh -c`.
	Line string

	// Dir is the working directory; empty means the process default.
	Dir string

	// Env is the full process environment; nil inherits the parent's.
	Env []string
}

// String renders the command for logs and error messages.
func (c Command) String() string {
	if len(c.Argv) > 0 {
		return shellquote.Join(c.Argv...)
	}
	return c.Line
}

// ProcessError reports a command that failed to launch or exited non-zero.
type ProcessError struct {
	// Command is the rendered command line.
	Command string

	// ExitCode is the exit status, or -1 if the command never ran.
	ExitCode int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed to run: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is reports ProcessError as an ErrProcess so callers can classify
// failures without inspecting the concrete type.
func (e *ProcessError) Is(target error) bool {
	return target == fferrors.ErrProcess
}

// Runner executes external commands. The pipeline depends on this seam so
// tests can substitute a recording fake.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ShellRunner runs commands synchronously against the real system.
// Output is not captured; the child inherits stdout and stderr.
type ShellRunner struct{}

// NewShellRunner creates a ShellRunner.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run executes the command and blocks until it exits. A non-zero exit or a
// launch failure is returned as a *ProcessError; it is never raised further
// than the calling stage.
func (r *ShellRunner) Run(ctx context.Context, cmd Command) error {
	var c *exec.Cmd
	switch {
	case len(cmd.Argv) > 0:
		c = exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	case cmd.Line != "":
		c = exec.CommandContext(ctx, "sh", "-c", cmd.Line)
	default:
		return &ProcessError{Command: "", ExitCode: -1, Err: errors.New("empty command")}
	}

	c.Dir = cmd.Dir
	c.Env = cmd.Env
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ProcessError{Command: cmd.String(), ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ProcessError{Command: cmd.String(), ExitCode: -1, Err: err}
	}

	return nil
}
