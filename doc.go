// Package gitcz is an interactive Conventional Commits helper
//
// gitcz assembles a Conventional-Commits-formatted commit message by
// walking the user through a short interactive sequence: a fuzzy-searched
// menu of commit types, a scope prompt, a subject prompt, an optional
// multi-line body, and an optional breaking-change footer. It then
// delegates to git commit with the assembled message and forwards git's
// exit code as its own.
//
// # Quick Start
//
//	# Stage your changes as usual
//	git add -p
//
//	# Run gitcz and answer the prompts
//	gitcz
//
//	# Seed the type menu with an initial query
//	gitcz fe
//
//	# Collect a multi-line body, skip pre-commit hooks
//	gitcz -b --no-verify
//
// # Key Features
//
//   - Fuzzy type selection: the eleven Conventional Commits types are
//     presented through fzf, pre-filtered by an optional argument
//   - Typed message assembly: header, body, and BREAKING CHANGE footer
//     are formatted from a validated draft rather than string surgery
//   - Faithful delegation: git commit output streams to the terminal and
//     its exit status becomes gitcz's exit status
//   - Scope history: recently used scopes are suggested at the scope prompt
//
// # Module Structure
//
// The module is organized into these packages:
//
//   - cmd/gitcz: Command-line interface
//   - internal/commit: Commit type menu, draft, and message formatting
//   - internal/git: Git operations behind an executor abstraction
//   - internal/fzf: External fuzzy selector integration
//   - internal/prompt: Interactive line, multi-line, and yes/no prompts
//   - internal/config: Layered configuration (file, environment, flags)
//   - internal/history: Scope history state file
//   - internal/lock: File-based locking mechanism
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities and exit codes
//   - internal/constants: ASCII art and fixed values
//
// # Exit Codes
//
// Every precondition failure and user abort terminates with its own
// non-zero status: usage errors (2), missing dependencies (3), not a
// repository (4), declining to continue with nothing staged (5), menu
// cancellation (6), and an empty subject (7). A failed git commit
// forwards git's own exit code.
//
// # Implementation Notes
//
// gitcz uses the command-line git executable rather than a Go git library
// to ensure compatibility with all git features, hooks, and repository
// configurations. The same executor abstraction runs fzf, which draws its
// interface on the controlling terminal while the selection is captured
// from stdout. Both are replaced with mocks in tests.
package gitcz
