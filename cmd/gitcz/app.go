package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	commitpkg "github.com/bashhack/gitcz/internal/commit"
	"github.com/bashhack/gitcz/internal/config"
	"github.com/bashhack/gitcz/internal/constants"
	internalErrors "github.com/bashhack/gitcz/internal/errors"
	"github.com/bashhack/gitcz/internal/fzf"
	"github.com/bashhack/gitcz/internal/git"
	"github.com/bashhack/gitcz/internal/history"
	"github.com/bashhack/gitcz/internal/lock"
	"github.com/bashhack/gitcz/internal/logger"
	"github.com/bashhack/gitcz/internal/prompt"
)

// GitClient performs the git operations the flow needs
type GitClient interface {
	IsWorkTree(ctx context.Context) bool
	CurrentBranch(ctx context.Context) (string, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	Commit(ctx context.Context, message string, noVerify bool) error
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// ScopeHistory records and recalls scopes from past commits
type ScopeHistory interface {
	Record(scope string) error
	Recent(n int) []string
}

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger   logger.Logger
	Locker   Locker
	Git      GitClient
	Finder   fzf.Finder
	Prompter prompt.Prompter
	History  ScopeHistory

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	ExecLookPath func(file string) (string, error)
}

// App is the main gitcz application
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Locker   Locker
	Git      GitClient
	Finder   fzf.Finder
	Prompter prompt.Prompter
	History  ScopeHistory

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	execLookPath func(file string) (string, error)
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Locker:       opts.Locker,
		Git:          opts.Git,
		Finder:       opts.Finder,
		Prompter:     opts.Prompter,
		History:      opts.History,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		execLookPath: opts.ExecLookPath,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.New(a.Config.Logging.Debug, a.Config.Logging.File,
			a.Config.Logging.Debug, a.Config.ColorEnabled())
	}

	if a.Locker == nil {
		locker, err := lock.New(a.Config.RepoPath)
		if err != nil {
			return internalErrors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Git == nil {
		a.Git = git.NewClient(a.Config.RepoPath)
	}

	if a.Finder == nil {
		a.Finder = fzf.New(a.Config.Fzf.Binary, a.Config.Fzf.Args)
	}

	if a.Prompter == nil {
		a.Prompter = prompt.NewDefaultPrompter(a.Logger)
	}

	if a.History == nil && a.Config.History.Enabled {
		a.History = history.New(a.Config.History.Path)
	}

	return nil
}

// Run drives the full interactive flow: precondition checks, the
// question sequence, message assembly, and the delegated git commit.
// typeFilter seeds the type menu's fuzzy query when non-empty.
func (a *App) Run(ctx context.Context, typeFilter string) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	defer func() {
		if l, ok := a.Logger.(*logger.DefaultLogger); ok && l != nil {
			_ = l.Close()
		}
	}()

	if err := a.checkRequiredCommands(); err != nil {
		return err
	}

	if !a.Git.IsWorkTree(ctx) {
		return internalErrors.ErrNotRepository
	}
	a.Logger.Info("Git repository verified at %s", a.Config.RepoPath)

	if err := a.Locker.Acquire(); err != nil {
		if internalErrors.Is(err, internalErrors.ErrAlreadyRunning) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrLockAcquisitionFailure, err.Error())
	}
	defer func() {
		_ = a.Locker.Release()
	}()

	if err := a.checkStagedChanges(ctx); err != nil {
		return err
	}

	draft, err := a.buildDraft(ctx, typeFilter)
	if err != nil {
		return err
	}

	return a.commitDraft(ctx, draft)
}

// checkRequiredCommands verifies git and the fuzzy selector are on PATH
func (a *App) checkRequiredCommands() error {
	if _, err := a.execLookPath("git"); err != nil {
		return internalErrors.Wrap(internalErrors.ErrMissingDependency, "git is not found in PATH")
	}
	if _, err := a.execLookPath(a.Config.Fzf.Binary); err != nil {
		return internalErrors.Wrapf(internalErrors.ErrMissingDependency,
			"%s is not found in PATH", a.Config.Fzf.Binary)
	}
	return nil
}

// checkStagedChanges warns when nothing is staged and lets the user
// decide whether to continue anyway.
func (a *App) checkStagedChanges(ctx context.Context) error {
	staged, err := a.Git.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if staged {
		return nil
	}

	a.Logger.WarningToUser("No changes staged for commit.")
	if !a.Prompter.YesNo("Continue anyway?") {
		return internalErrors.ErrUserDeclined
	}
	return nil
}

// buildDraft runs the interactive question sequence and assembles the
// transient commit draft.
func (a *App) buildDraft(ctx context.Context, typeFilter string) (commitpkg.Draft, error) {
	var draft commitpkg.Draft

	if branch, err := a.Git.CurrentBranch(ctx); err == nil && branch != "" {
		a.Logger.StatusMessage("🌿 Committing on branch: %s", branch)
	}

	line, err := a.Finder.Select(ctx, commitpkg.MenuLines(), typeFilter)
	if err != nil {
		return draft, err
	}
	if line == "" {
		return draft, internalErrors.ErrNoTypeSelected
	}
	commitType, ok := commitpkg.TypeFromLine(line)
	if !ok {
		return draft, internalErrors.Wrapf(internalErrors.ErrNoTypeSelected,
			"selection %q is not a known commit type", line)
	}
	draft.Type = commitType

	if a.History != nil {
		if recent := a.History.Recent(5); len(recent) > 0 {
			a.Logger.StatusMessage("Recent scopes: %s", strings.Join(recent, ", "))
		}
	}
	draft.Scope, err = a.Prompter.Line("Scope (optional): ")
	if err != nil {
		return draft, err
	}

	draft.Subject, err = a.Prompter.Line("Subject: ")
	if err != nil {
		return draft, err
	}
	if draft.Subject == "" {
		return draft, internalErrors.ErrEmptySubject
	}

	if a.Config.Commit.Body {
		draft.Body, err = a.Prompter.MultiLine("Body (finish with Ctrl-D):")
		if err != nil {
			return draft, err
		}
	}

	if a.Prompter.YesNo("Any breaking changes?") {
		// An empty description intentionally yields no footer
		draft.BreakingChange, err = a.Prompter.Line("Describe the breaking change: ")
		if err != nil {
			return draft, err
		}
	}

	if err := draft.Validate(); err != nil {
		return draft, err
	}
	return draft, nil
}

// commitDraft echoes the assembled message and delegates to git commit.
func (a *App) commitDraft(ctx context.Context, draft commitpkg.Draft) error {
	message := draft.Message()

	a.Logger.StatusMessage("")
	a.Logger.StatusMessage("%s", message)
	a.Logger.StatusMessage("")

	if err := a.Git.Commit(ctx, message, a.Config.Commit.NoVerify); err != nil {
		a.Logger.Error("Commit failed: %v", err)
		return err
	}

	a.Logger.Success("Commit created")

	if a.History != nil {
		if err := a.History.Record(draft.Scope); err != nil {
			a.Logger.Warning("Failed to record scope history: %v", err)
		}
	}

	return nil
}

// ShowLogo displays ASCII art logo
func (a *App) ShowLogo() {
	_, _ = fmt.Fprint(a.Stdout, constants.Logo, "\n")
	_, _ = fmt.Fprintln(a.Stdout, "")

	asciiArtWidth := 80
	padding := (asciiArtWidth - len(constants.Tagline)) / 2
	centeredTagline := fmt.Sprintf("%s%s", strings.Repeat(" ", padding), constants.Tagline)
	_, _ = fmt.Fprintln(a.Stdout, centeredTagline)
}
