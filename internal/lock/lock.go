// Package lock keeps two generation runs from writing the same root at once.
package lock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/starford/txtindex/internal/apperr"
	"github.com/starford/txtindex/internal/checksum"
)

// RunLock is a cross-process, non-blocking lock for one repository root.
type RunLock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// PathFor returns the default lock file for root. It lives in the OS temp
// dir so it is never picked up by "git add .".
func PathFor(root string) string {
	return filepath.Join(os.TempDir(), "txtindex-"+checksum.Key(root, 16)+".lock")
}

// New returns a lock backed by the file at path.
func New(path string) *RunLock {
	return &RunLock{
		path:  path,
		flock: flock.New(path),
	}
}

// Acquire takes the lock without waiting. It returns apperr.ErrLocked when
// another process holds it.
func (l *RunLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("lock: create dir: %w", err)
	}
	ok, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("lock: %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("lock: %s: %w", l.path, apperr.ErrLocked)
	}
	l.locked = true
	return nil
}

// Release drops the lock. Calling it on an unheld lock is a no-op.
func (l *RunLock) Release() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("lock: release: %w", err)
	}
	return nil
}

// Path returns the lock file path.
func (l *RunLock) Path() string {
	return l.path
}
