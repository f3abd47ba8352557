// Package git provides git operations for the gitcz application.
//
// All operations go through the command-line git executable rather than
// a Go git library, which keeps gitcz compatible with hooks, templates,
// and every repository configuration git itself supports. Commands are
// executed through the CommandExecutor interface so tests can substitute
// a mock; the same interface also runs the external fuzzy selector.
//
// The Client reads the repository state (work tree membership, current
// branch, staged changes) and performs the single mutating operation of
// the program: creating a commit. Commit streams git's output to the
// terminal and surfaces git's exit status through the returned error so
// the caller can propagate it.
package git
