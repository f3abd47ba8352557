package lock

import (
	"os"
	"strconv"
	"strings"
	"testing"

	gitczErrors "github.com/bashhack/gitcz/internal/errors"
)

func TestAcquireAndRelease(t *testing.T) {
	t.Parallel()

	locker, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := locker.Acquire(); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}

	// The lock file records our PID
	data, err := os.ReadFile(locker.LockFile())
	if err != nil {
		t.Fatalf("failed to read lock file: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid != os.Getpid() {
		t.Errorf("lock file PID = %q, want %d", string(data), os.Getpid())
	}

	if err := locker.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	if _, err := os.Stat(locker.LockFile()); !os.IsNotExist(err) {
		t.Error("expected lock file to be removed on release")
	}
}

func TestSecondAcquireFails(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()

	first, err := New(repo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := first.Acquire(); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	defer func() {
		_ = first.Release()
	}()

	second, err := New(repo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	err = second.Acquire()
	if !gitczErrors.Is(err, gitczErrors.ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()

	first, err := New(repo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := first.Acquire(); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	second, err := New(repo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := second.Acquire(); err != nil {
		t.Errorf("expected acquire to succeed after release, got %v", err)
	}
	_ = second.Release()
}

func TestStaleLockRecovery(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()

	locker, err := New(repo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// A lock file with no live holder and an impossible PID is stale
	if err := os.WriteFile(locker.LockFile(), []byte("999999999"), 0666); err != nil {
		t.Fatalf("failed to plant stale lock: %v", err)
	}

	if err := locker.Acquire(); err != nil {
		t.Fatalf("expected stale lock to be recovered, got %v", err)
	}
	_ = locker.Release()
}

func TestReleaseWithoutAcquire(t *testing.T) {
	t.Parallel()

	locker, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := locker.Release(); err != nil {
		t.Errorf("Release() without Acquire() must be a no-op, got %v", err)
	}
}

func TestDistinctRepositoriesGetDistinctLocks(t *testing.T) {
	t.Parallel()

	first, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	second, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if first.LockFile() == second.LockFile() {
		t.Error("different repositories must map to different lock files")
	}

	if err := first.Acquire(); err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	defer func() { _ = first.Release() }()

	if err := second.Acquire(); err != nil {
		t.Errorf("lock on one repository must not block another: %v", err)
	}
	_ = second.Release()
}
