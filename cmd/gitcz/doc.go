// Command gitcz is the interactive Conventional Commits helper.
//
// It validates its preconditions (fzf and git on PATH, a git work tree,
// staged changes or explicit confirmation), runs the prompt sequence to
// build a commit message, and delegates to git commit. See the root
// package documentation for the full behavior and exit code contract.
package main
