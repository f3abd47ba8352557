// Package lock provides file-based locking for the gitcz application.
//
// Only one interactive gitcz session may run for a given repository at a
// time; two sessions would interleave their prompts and race on the git
// index. The lock is a flock-held file in the system temp directory named
// from a hash of the repository path, containing the holder's process ID.
// Stale locks left by dead processes are detected via the recorded PID
// and recovered automatically.
//
// A Locker is not safe for concurrent use by multiple goroutines; the
// application acquires it once at startup and releases it on exit.
package lock
