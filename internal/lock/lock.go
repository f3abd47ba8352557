package lock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	gitczErrors "github.com/bashhack/gitcz/internal/errors"
)

// Locker prevents concurrent gitcz sessions for one repository using a
// flock-held lock file in the temp directory. Two interactive sessions
// racing to commit in the same repository would interleave their prompts
// and their index mutations, so only one may run at a time.
type Locker struct {
	lockFile string
	lockFd   *os.File
	pid      int
	acquired bool
}

// New creates a Locker for the specified repository path
func New(repoPath string) (*Locker, error) {
	if runtime.GOOS == "windows" {
		return nil, gitczErrors.NewLockError("", 0,
			gitczErrors.Wrap(gitczErrors.ErrLockAcquisitionFailure,
				"gitcz currently only supports Unix-like operating systems (Linux, macOS, BSD)"))
	}

	repoHash := fmt.Sprintf("%x", sha256.Sum256([]byte(repoPath)))[:16]
	lockFile := filepath.Join(os.TempDir(), fmt.Sprintf("gitcz-%s.lock", repoHash))

	return &Locker{
		lockFile: lockFile,
		pid:      os.Getpid(),
	}, nil
}

// Acquire tries to acquire the lock, recovering stale locks left behind
// by dead processes.
func (l *Locker) Acquire() error {
	var err error
	l.lockFd, err = os.OpenFile(l.lockFile, os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return gitczErrors.NewLockError(l.lockFile, 0,
			gitczErrors.Wrap(err, "failed to open lock file"))
	}

	if err = l.acquireFlock(); err != nil {
		// EWOULDBLOCK and EAGAIN are distinct codes on some older Unix
		// systems; treat them the same.
		if gitczErrors.Is(err, syscall.EWOULDBLOCK) || gitczErrors.Is(err, syscall.EAGAIN) {
			return l.handleBlockedLock()
		}
		l.closeFileDescriptor()
		return gitczErrors.NewLockError(l.lockFile, 0,
			gitczErrors.Wrap(err, "failed to acquire lock"))
	}

	if err = l.resetAndWritePid(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return gitczErrors.Wrap(err, fmt.Sprintf("failed to write PID and failed to release lock: %v", releaseErr))
		}
		return err
	}

	l.acquired = true
	return nil
}

// handleBlockedLock identifies the lock holder and recovers the lock
// when the holding process is no longer running.
func (l *Locker) handleBlockedLock() error {
	otherPid, pidErr := l.readLockFilePid()

	l.closeFileDescriptor()

	if pidErr != nil {
		return gitczErrors.NewLockError(l.lockFile, 0,
			gitczErrors.Wrap(pidErr, "another gitcz instance holds the lock, but couldn't identify its PID"))
	}

	if isProcessRunning(otherPid) {
		return gitczErrors.NewLockError(l.lockFile, otherPid, gitczErrors.ErrAlreadyRunning)
	}

	return l.handleStaleLock(otherPid)
}

// handleStaleLock removes the dead holder's lock file and retries once.
func (l *Locker) handleStaleLock(otherPid int) error {
	if err := os.Remove(l.lockFile); err != nil && !os.IsNotExist(err) {
		return gitczErrors.NewLockError(l.lockFile, otherPid,
			gitczErrors.Wrap(err, fmt.Sprintf("found stale lock file from PID %d, but failed to remove it", otherPid)))
	}

	var err error
	l.lockFd, err = os.OpenFile(l.lockFile, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0666)
	if err != nil {
		return gitczErrors.NewLockError(l.lockFile, 0,
			gitczErrors.Wrap(err, "failed to recreate lock file after removing stale lock"))
	}

	if err = l.acquireFlock(); err != nil {
		l.closeFileDescriptor()
		return gitczErrors.NewLockError(l.lockFile, 0,
			gitczErrors.Wrap(err, "failed to acquire lock even after removing stale lock"))
	}

	if err = l.writePidToLockFile(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return gitczErrors.Wrap(err, fmt.Sprintf("failed to write PID and failed to release lock: %v", releaseErr))
		}
		return err
	}

	l.acquired = true
	return nil
}

// acquireFlock gets an exclusive non-blocking lock
func (l *Locker) acquireFlock() error {
	return syscall.Flock(int(l.lockFd.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
}

// resetAndWritePid clears the file and writes the current PID
func (l *Locker) resetAndWritePid() error {
	if err := l.lockFd.Truncate(0); err != nil {
		return gitczErrors.NewLockError(l.lockFile, l.pid,
			gitczErrors.Wrap(err, "failed to truncate lock file"))
	}
	return l.writePidToLockFile()
}

// writePidToLockFile writes PID to the lock file
func (l *Locker) writePidToLockFile() error {
	_, err := l.lockFd.WriteAt([]byte(strconv.Itoa(l.pid)), 0)
	if err != nil {
		return gitczErrors.NewLockError(l.lockFile, l.pid,
			gitczErrors.Wrap(err, "failed to write PID to lock file"))
	}
	return nil
}

// readLockFilePid reads and parses the PID from the lock file
func (l *Locker) readLockFilePid() (int, error) {
	data, err := os.ReadFile(l.lockFile)
	if err != nil {
		return 0, gitczErrors.Wrap(err, "failed to read lock file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, gitczErrors.Wrap(err, "invalid PID in lock file")
	}
	return pid, nil
}

// closeFileDescriptor closes the lock file descriptor
func (l *Locker) closeFileDescriptor() {
	if l.lockFd != nil {
		_ = l.lockFd.Close()
		l.lockFd = nil
	}
}

// isProcessRunning checks if a process exists using signal 0
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// Release releases the lock if it was acquired and removes the lock file.
func (l *Locker) Release() error {
	if l.lockFd == nil {
		return nil
	}

	var err error
	if flockErr := syscall.Flock(int(l.lockFd.Fd()), syscall.LOCK_UN); flockErr != nil {
		err = gitczErrors.NewLockError(l.lockFile, l.pid,
			gitczErrors.Wrap(flockErr, "failed to release lock"))
	}

	if closeErr := l.lockFd.Close(); closeErr != nil && err == nil {
		err = gitczErrors.NewLockError(l.lockFile, l.pid,
			gitczErrors.Wrap(closeErr, "failed to close lock file"))
	}

	l.lockFd = nil
	l.acquired = false

	// Best-effort cleanup; only the holder reaches this point
	if removeErr := os.Remove(l.lockFile); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = gitczErrors.NewLockError(l.lockFile, l.pid,
			gitczErrors.Wrap(removeErr, "failed to remove lock file"))
	}

	return err
}

// LockFile returns the path of the underlying lock file.
func (l *Locker) LockFile() string {
	return l.lockFile
}
