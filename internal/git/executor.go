package git

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/bashhack/gitcz/internal/errors"
)

// CommandExecutor defines an interface for executing external commands
type CommandExecutor interface {
	// Execute runs a command, leaving its stdio wherever the caller
	// pointed it (the terminal for interactive commands)
	Execute(ctx context.Context, cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its captured stdout
	ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	err := cmd.Run()
	if err != nil {
		return wrapExecError(cmd, err, "")
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", wrapExecError(cmd, err, stderr.String())
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return stdout.String(), nil
}

// wrapExecError converts an os/exec failure into a GitError that records
// the command, captured stderr, and the child exit status when known.
func wrapExecError(cmd *exec.Cmd, err error, stderr string) error {
	operation := ""
	if len(cmd.Args) > 0 {
		operation = cmd.Args[0]
	}

	var args []string
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:]
	}

	wrappedErr := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
	gitErr := errors.NewGitError(operation, args, wrappedErr, stderr)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		gitErr.ExitCode = exitErr.ExitCode()
	}

	return gitErr
}
