package lock

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/txtindex/internal/apperr"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.lock")
	l := New(path)
	if err := l.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("second Release should be a no-op: %v", err)
	}
	if err := l.Acquire(); err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	_ = l.Release()
}

func TestAcquireContended(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.lock")
	first := New(path)
	if err := first.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer first.Release()

	// flock locks are per open file description, so a second handle in the
	// same process contends like another process would.
	second := New(path)
	err := second.Acquire()
	if !errors.Is(err, apperr.ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
}

func TestPathFor(t *testing.T) {
	a := PathFor("/srv/site")
	if !strings.HasPrefix(filepath.Base(a), "txtindex-") || !strings.HasSuffix(a, ".lock") {
		t.Errorf("PathFor = %q", a)
	}
	if a == PathFor("/srv/other") {
		t.Error("roots should not share a lock")
	}
}
