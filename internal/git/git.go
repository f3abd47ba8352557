package git

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/bashhack/gitcz/internal/errors"
)

// Client runs git commands against a single repository working tree.
// The index and working tree are only read until Commit, which is the
// sole mutating operation.
type Client struct {
	repoPath string
	executor CommandExecutor
}

// NewClient creates a Client with the default exec-backed executor
func NewClient(repoPath string) *Client {
	return NewClientWithExecutor(repoPath, NewExecExecutor())
}

// NewClientWithExecutor creates a Client with a custom executor
func NewClientWithExecutor(repoPath string, executor CommandExecutor) *Client {
	return &Client{
		repoPath: repoPath,
		executor: executor,
	}
}

// IsRepository checks if the given path is inside a git work tree
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	executor := NewExecExecutor()
	return executor.Execute(context.Background(), cmd) == nil
}

// IsWorkTree reports whether the client's path is inside a git work tree.
func (c *Client) IsWorkTree(ctx context.Context) bool {
	return c.runGitCommand(ctx, "rev-parse", "--is-inside-work-tree") == nil
}

// CurrentBranch returns the name of the current git branch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	output, err := c.runGitCommandWithOutput(ctx, "branch", "--show-current")
	if err != nil {
		return "unknown", err
	}
	return strings.TrimSpace(output), nil
}

// HasStagedChanges reports whether the index holds changes staged for
// the next commit.
func (c *Client) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := c.runGitCommandWithOutput(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return false, err
		}
		return false, errors.Wrap(errors.ErrGitOperationFailed, "failed to check staged changes")
	}
	return strings.TrimSpace(output) != "", nil
}

// Commit creates a commit with the given message, passing --no-verify
// through when requested. Git's stdout and stderr go straight to the
// terminal so hook output stays visible; the returned error carries
// git's exit code for the caller to propagate.
func (c *Client) Commit(ctx context.Context, message string, noVerify bool) error {
	args := []string{"commit", "-m", message}
	if noVerify {
		args = append(args, "--no-verify")
	}

	baseArgs := []string{"-C", c.repoPath}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)
	cmd.Dir = c.repoPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return c.executor.Execute(ctx, cmd)
}

// runGitCommand executes a git command in the repository directory.
func (c *Client) runGitCommand(ctx context.Context, args ...string) error {
	baseArgs := []string{"-C", c.repoPath}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)
	cmd.Dir = c.repoPath
	return c.executor.Execute(ctx, cmd)
}

// runGitCommandWithOutput executes a git command and returns its output.
func (c *Client) runGitCommandWithOutput(ctx context.Context, args ...string) (string, error) {
	baseArgs := []string{"-C", c.repoPath}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)
	cmd.Dir = c.repoPath
	return c.executor.ExecuteWithOutput(ctx, cmd)
}
