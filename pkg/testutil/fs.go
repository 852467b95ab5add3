package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/copyconfig/pkg/types"
)

// RecordingFS wraps a types.FS, recording every mutation and failing
// operations on paths registered with FailOn.
type RecordingFS struct {
	types.FS

	Writes  []string
	Removes []string
	Mkdirs  []string

	errorPaths map[string]error
}

// NewRecordingFS wraps inner.
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{FS: inner, errorPaths: make(map[string]error)}
}

// FailOn makes every operation on path return err.
func (r *RecordingFS) FailOn(path string, err error) {
	r.errorPaths[filepath.Clean(path)] = err
}

// Mutations is the total number of writes, removes and mkdirs.
func (r *RecordingFS) Mutations() int {
	return len(r.Writes) + len(r.Removes) + len(r.Mkdirs)
}

func (r *RecordingFS) check(path string) error {
	return r.errorPaths[filepath.Clean(path)]
}

func (r *RecordingFS) Stat(name string) (fs.FileInfo, error) {
	if err := r.check(name); err != nil {
		return nil, err
	}
	return r.FS.Stat(name)
}

func (r *RecordingFS) ReadFile(name string) ([]byte, error) {
	if err := r.check(name); err != nil {
		return nil, err
	}
	return r.FS.ReadFile(name)
}

func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := r.check(name); err != nil {
		return err
	}
	r.Writes = append(r.Writes, name)
	return r.FS.WriteFile(name, data, perm)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := r.check(path); err != nil {
		return err
	}
	r.Mkdirs = append(r.Mkdirs, path)
	return r.FS.MkdirAll(path, perm)
}

func (r *RecordingFS) Remove(name string) error {
	if err := r.check(name); err != nil {
		return err
	}
	r.Removes = append(r.Removes, name)
	return r.FS.Remove(name)
}

func (r *RecordingFS) RemoveAll(path string) error {
	if err := r.check(path); err != nil {
		return err
	}
	r.Removes = append(r.Removes, path)
	return r.FS.RemoveAll(path)
}
