package filelock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileLock(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "test.lock")

	lock := NewFileLock(lockPath)
	if lock == nil {
		t.Fatal("NewFileLock should not return nil")
	}

	if lock.Path() != lockPath {
		t.Errorf("Expected lock path %s, got %s", lockPath, lock.Path())
	}
}

func TestForArtifact(t *testing.T) {
	lock := ForArtifact("/data/folder_summary.txt")

	want := "/data/folder_summary.txt.lock"
	if lock.Path() != want {
		t.Errorf("Path() = %q, want %q", lock.Path(), want)
	}
}

func TestLockUnlock(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "test.lock")

	lock := NewFileLock(lockPath)

	if err := lock.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
}

func TestTryLockContention(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "contended.lock")

	first := NewFileLock(lockPath)
	acquired, err := first.TryLock()
	if err != nil {
		t.Fatalf("first TryLock error: %v", err)
	}
	if !acquired {
		t.Fatal("first TryLock should acquire the lock")
	}
	defer first.Unlock()

	// A second lock handle on the same path must not acquire
	second := NewFileLock(lockPath)
	acquired, err = second.TryLock()
	if err != nil {
		t.Fatalf("second TryLock error: %v", err)
	}
	if acquired {
		t.Error("second TryLock acquired a held lock")
	}
}

func TestTryLockAfterUnlock(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "reuse.lock")

	first := NewFileLock(lockPath)
	if _, err := first.TryLock(); err != nil {
		t.Fatalf("TryLock error: %v", err)
	}
	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}

	second := NewFileLock(lockPath)
	acquired, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock error: %v", err)
	}
	if !acquired {
		t.Error("lock not acquirable after release")
	}
	second.Unlock()
}

func TestRemove(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "removed.lock")

	lock := NewFileLock(lockPath)
	if _, err := lock.TryLock(); err != nil {
		t.Fatalf("TryLock error: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}

	if err := lock.Remove(); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Errorf("lock file still present after Remove: %v", err)
	}

	// Removing again is not an error
	if err := lock.Remove(); err != nil {
		t.Errorf("second Remove error: %v", err)
	}
}
