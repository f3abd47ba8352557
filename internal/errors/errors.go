package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrMissingDependency indicates a required external command is not on PATH
	ErrMissingDependency = errors.New("missing dependency")

	// ErrNotRepository indicates the working directory is not inside a git work tree
	ErrNotRepository = errors.New("not a git repository")

	// ErrUserDeclined indicates the user declined to continue without staged changes
	ErrUserDeclined = errors.New("aborted: nothing staged for commit")

	// ErrNoTypeSelected indicates the user cancelled the commit type menu
	ErrNoTypeSelected = errors.New("no commit type selected")

	// ErrEmptySubject indicates the subject prompt returned an empty line
	ErrEmptySubject = errors.New("commit message is required")

	// ErrUsage indicates a command-line usage error (unknown flag, extra args)
	ErrUsage = errors.New("usage error")

	// ErrGitOperationFailed indicates a git command returned an error
	ErrGitOperationFailed = errors.New("git operation failed")

	// ErrInvalidConfiguration indicates an invalid or conflicting user configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyRunning indicates another gitcz instance is running for this repo
	ErrAlreadyRunning = errors.New("another gitcz instance is already running for this repository")

	// ErrLockAcquisitionFailure indicates a lock file could not be acquired
	ErrLockAcquisitionFailure = errors.New("failed to acquire lock")
)

// Exit codes returned by the gitcz binary. Each precondition failure and
// user abort maps to its own code so callers and scripts can tell them apart.
// A failed git commit propagates git's own exit code instead.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitUsage             = 2
	ExitMissingDependency = 3
	ExitNotRepository     = 4
	ExitUserDeclined      = 5
	ExitNoTypeSelected    = 6
	ExitEmptySubject      = 7
)

// ExitCode maps err to the process exit status main should use.
//
// A GitError that recorded the child's exit status forwards that status
// verbatim. Sentinel errors map to their dedicated codes; anything else
// is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) && gitErr.ExitCode > 0 {
		return gitErr.ExitCode
	}

	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrInvalidConfiguration):
		return ExitUsage
	case errors.Is(err, ErrMissingDependency):
		return ExitMissingDependency
	case errors.Is(err, ErrNotRepository):
		return ExitNotRepository
	case errors.Is(err, ErrUserDeclined):
		return ExitUserDeclined
	case errors.Is(err, ErrNoTypeSelected):
		return ExitNoTypeSelected
	case errors.Is(err, ErrEmptySubject):
		return ExitEmptySubject
	}
	return ExitFailure
}

// New creates a new error with the given message.
// This is a convenience function that wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GitError represents an error that occurred while running an external
// command (git or fzf). It captures the command details, underlying error,
// captured output, and the child process exit status when known.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Output    string
	ExitCode  int
}

// Error implements the error interface with a detailed, user-friendly error message.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Operation)
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a new GitError with the given parameters.
func NewGitError(operation string, args []string, err error, output string) *GitError {
	return &GitError{
		Operation: operation,
		Args:      args,
		Err:       err,
		Output:    output,
	}
}

// LockError represents an error that occurred when interacting with file locks.
// It includes the lock file path, process ID if available, and underlying error.
type LockError struct {
	LockFile string
	PID      int
	Err      error
}

// Error implements the error interface with details about the lock file and process.
func (e *LockError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("lock error with file %s (PID: %d): %v", e.LockFile, e.PID, e.Err)
	}
	return fmt.Sprintf("lock error with file %s: %v", e.LockFile, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *LockError) Unwrap() error {
	return e.Err
}

// NewLockError creates a new LockError with the given parameters.
func NewLockError(lockFile string, pid int, err error) *LockError {
	return &LockError{
		LockFile: lockFile,
		PID:      pid,
		Err:      err,
	}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
