// Package testutil provides shared test helpers for setting up repository roots.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/txtindex/internal/storage"
)

// FixedTime is the clock value used by tests that need stable dates.
var FixedTime = time.Date(2024, time.March, 5, 14, 30, 45, 0, time.UTC)

// Clock returns a time source that always reports FixedTime.
func Clock() func() time.Time {
	return func() time.Time { return FixedTime }
}

// TestRoot creates a temporary repository root and a storage.Provider over it.
func TestRoot(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteFiles creates each relative path under root with placeholder content.
func WriteFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(p+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// Exists reports whether the relative path exists under root.
func Exists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
