package fzf

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bashhack/gitcz/internal/errors"
	"github.com/bashhack/gitcz/internal/git"
)

// DefaultBinary is the fuzzy selector gitcz looks for on PATH.
const DefaultBinary = "fzf"

// Exit statuses defined by fzf's command-line contract.
const (
	exitNoMatch   = 1
	exitInterrupt = 130
)

// Finder presents a candidate list through an interactive fuzzy selector
// and returns the line the user picked. An empty string with a nil error
// means the user cancelled without choosing.
type Finder interface {
	Select(ctx context.Context, items []string, query string) (string, error)
}

// Fzf is the Finder implementation backed by the external fzf binary.
// fzf draws its interface on the controlling terminal and prints the
// selection on stdout, so the selection can be captured while the menu
// stays interactive.
type Fzf struct {
	Binary   string
	Args     []string
	executor git.CommandExecutor
}

// New creates an Fzf finder using the given binary name and extra
// arguments, with the default exec-backed executor.
func New(binary string, args []string) *Fzf {
	return NewWithExecutor(binary, args, git.NewExecExecutor())
}

// NewWithExecutor creates an Fzf finder with a custom executor.
func NewWithExecutor(binary string, args []string, executor git.CommandExecutor) *Fzf {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Fzf{
		Binary:   binary,
		Args:     args,
		executor: executor,
	}
}

// Available reports whether the selector binary can be found on PATH.
func (f *Fzf) Available() bool {
	_, err := exec.LookPath(f.Binary)
	return err == nil
}

// Select feeds items to the selector, newline separated, seeding the
// search with query when non-empty. Cancellation (interrupt or no
// match) returns "" with a nil error per the selector's contract.
func (f *Fzf) Select(ctx context.Context, items []string, query string) (string, error) {
	args := append([]string(nil), f.Args...)
	if query != "" {
		args = append(args, "--query", query)
	}

	cmd := exec.CommandContext(ctx, f.Binary, args...)
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n") + "\n")

	output, err := f.executor.ExecuteWithOutput(ctx, cmd)
	if err != nil {
		var gitErr *errors.GitError
		if errors.As(err, &gitErr) {
			if gitErr.ExitCode == exitInterrupt || gitErr.ExitCode == exitNoMatch {
				return "", nil
			}
		}
		return "", err
	}

	return strings.TrimSpace(output), nil
}
