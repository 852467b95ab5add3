package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem primitive used by the sync engine. Every read, write
// and delete goes through it so tests can swap in an in-memory tree.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Walk(root string, fn filepath.WalkFunc) error
	MkdirTemp(dir, pattern string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}
