package main

import (
	"bytes"
	"context"

	"github.com/bashhack/gitcz/internal/config"
	"github.com/bashhack/gitcz/internal/logger"
)

// recordedCommit captures one delegated git commit call
type recordedCommit struct {
	Message  string
	NoVerify bool
}

// mockGit is a scripted GitClient
type mockGit struct {
	WorkTree  bool
	Branch    string
	Staged    bool
	StagedErr error
	CommitErr error
	Commits   []recordedCommit
}

func (m *mockGit) IsWorkTree(ctx context.Context) bool {
	return m.WorkTree
}

func (m *mockGit) CurrentBranch(ctx context.Context) (string, error) {
	return m.Branch, nil
}

func (m *mockGit) HasStagedChanges(ctx context.Context) (bool, error) {
	return m.Staged, m.StagedErr
}

func (m *mockGit) Commit(ctx context.Context, message string, noVerify bool) error {
	m.Commits = append(m.Commits, recordedCommit{Message: message, NoVerify: noVerify})
	return m.CommitErr
}

// mockFinder returns a scripted selection and records the call
type mockFinder struct {
	Selection string
	Err       error
	GotItems  []string
	GotQuery  string
}

func (m *mockFinder) Select(ctx context.Context, items []string, query string) (string, error) {
	m.GotItems = items
	m.GotQuery = query
	return m.Selection, m.Err
}

// mockPrompter replays scripted answers in prompt order
type mockPrompter struct {
	Lines     []string
	Multiline string
	Answers   []bool

	lineIdx   int
	answerIdx int
}

func (m *mockPrompter) Line(question string) (string, error) {
	if m.lineIdx >= len(m.Lines) {
		return "", nil
	}
	answer := m.Lines[m.lineIdx]
	m.lineIdx++
	return answer, nil
}

func (m *mockPrompter) MultiLine(question string) (string, error) {
	return m.Multiline, nil
}

func (m *mockPrompter) YesNo(question string) bool {
	if m.answerIdx >= len(m.Answers) {
		return false
	}
	answer := m.Answers[m.answerIdx]
	m.answerIdx++
	return answer
}

// mockLocker tracks acquire/release calls
type mockLocker struct {
	AcquireErr error
	Acquired   bool
	Released   bool
}

func (m *mockLocker) Acquire() error {
	if m.AcquireErr != nil {
		return m.AcquireErr
	}
	m.Acquired = true
	return nil
}

func (m *mockLocker) Release() error {
	m.Released = true
	return nil
}

// mockHistory records scopes in memory
type mockHistory struct {
	Recorded []string
	Scopes   []string
}

func (m *mockHistory) Record(scope string) error {
	m.Recorded = append(m.Recorded, scope)
	return nil
}

func (m *mockHistory) Recent(n int) []string {
	if n > 0 && len(m.Scopes) > n {
		return m.Scopes[:n]
	}
	return m.Scopes
}

// testDeps bundles the standard mock wiring for App flow tests
type testDeps struct {
	Git      *mockGit
	Finder   *mockFinder
	Prompter *mockPrompter
	Locker   *mockLocker
	History  *mockHistory
	Stdout   *bytes.Buffer
	Stderr   *bytes.Buffer
}

// newTestApp builds an App whose collaborators are all mocks. The
// defaults describe the happy path: a work tree with staged changes,
// a selected feat type, and scripted scope/subject answers.
func newTestApp(cfg *config.Config) (*App, *testDeps) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	cfg.History.Enabled = false // flow tests inject their own history

	deps := &testDeps{
		Git: &mockGit{
			WorkTree: true,
			Branch:   "main",
			Staged:   true,
		},
		Finder:   &mockFinder{Selection: "feat: new feature"},
		Prompter: &mockPrompter{Lines: []string{"auth", "add OAuth login"}},
		Locker:   &mockLocker{},
		History:  &mockHistory{},
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
	}

	log := logger.NewWithOutput(false, "", false, false, deps.Stdout, deps.Stderr)

	app := NewApp(AppOptions{
		Config:   cfg,
		Logger:   log,
		Locker:   deps.Locker,
		Git:      deps.Git,
		Finder:   deps.Finder,
		Prompter: deps.Prompter,
		History:  deps.History,
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		ExecLookPath: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
	})

	return app, deps
}
