// Package storage defines filesystem access relative to the repository root.
package storage

// Provider is the interface for repository file operations.
type Provider interface {
	// DirExists reports whether dir (relative to root) exists as a directory.
	DirExists(dir string) (bool, error)
	// EnsureDir creates dir (relative to root) and any missing parents.
	EnsureDir(dir string) error
	// ListFiles returns the sorted names of regular files directly inside
	// dir whose name ends with suffix.
	ListFiles(dir, suffix string) ([]string, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root).
	Write(path string, content []byte) error
}
