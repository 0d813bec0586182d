package fetch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAcquireLock(t *testing.T) {
	t.Run("creates lock file", func(t *testing.T) {
		dir := t.TempDir()

		lock, err := acquireLock(dir)
		if err != nil {
			t.Fatalf("acquireLock failed: %v", err)
		}
		defer lock.release()

		data, err := os.ReadFile(filepath.Join(dir, LockFilename))
		if err != nil {
			t.Fatalf("lock file not created: %v", err)
		}
		if !strings.Contains(string(data), "pid=") {
			t.Errorf("lock file missing pid: %q", data)
		}
	})

	t.Run("prevents concurrent locks", func(t *testing.T) {
		dir := t.TempDir()

		lock1, err := acquireLock(dir)
		if err != nil {
			t.Fatalf("first acquireLock failed: %v", err)
		}
		defer lock1.release()

		if _, err := acquireLock(dir); err != ErrLocked {
			t.Errorf("expected ErrLocked, got %v", err)
		}
	})

	t.Run("release allows reacquire", func(t *testing.T) {
		dir := t.TempDir()

		lock1, err := acquireLock(dir)
		if err != nil {
			t.Fatal(err)
		}
		if err := lock1.release(); err != nil {
			t.Fatalf("release failed: %v", err)
		}

		lock2, err := acquireLock(dir)
		if err != nil {
			t.Fatalf("reacquire failed: %v", err)
		}
		defer lock2.release()
	})

	t.Run("replaces stale lock", func(t *testing.T) {
		dir := t.TempDir()
		lockPath := filepath.Join(dir, LockFilename)
		if err := os.WriteFile(lockPath, []byte("pid=1\n"), 0600); err != nil {
			t.Fatal(err)
		}
		old := time.Now().Add(-2 * StaleLockThreshold)
		if err := os.Chtimes(lockPath, old, old); err != nil {
			t.Fatal(err)
		}

		lock, err := acquireLock(dir)
		if err != nil {
			t.Fatalf("expected stale lock to be replaced, got %v", err)
		}
		defer lock.release()
	})

	t.Run("release is idempotent", func(t *testing.T) {
		lock, err := acquireLock(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if err := lock.release(); err != nil {
			t.Fatal(err)
		}
		if err := lock.release(); err != nil {
			t.Errorf("second release failed: %v", err)
		}
	})
}

func TestAcquireLockPayload(t *testing.T) {
	dir := t.TempDir()
	lock, err := acquireLock(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer lock.release()

	data, err := os.ReadFile(filepath.Join(dir, LockFilename))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"pid=", "timestamp="} {
		if !strings.Contains(string(data), want) {
			t.Errorf("lock file missing %s: %q", want, data)
		}
	}
}
