// Package errors provides error handling utilities for the gitcz application.
//
// It defines sentinel errors for every distinct failure the program can
// hit (missing dependencies, not a repository, user aborts, usage and
// configuration errors), typed errors that carry structured context
// (GitError with command details and the child exit status, LockError,
// ConfigError), and the ExitCode mapping that turns any error into the
// process exit status: sentinels map to their dedicated codes, and a
// GitError from a failed git commit forwards git's own exit code.
//
// The convenience wrappers (New, Errorf, Wrap, Wrapf, Is, As) mirror the
// standard library so call sites only import this package.
package errors
