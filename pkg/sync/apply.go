package sync

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

const defaultFileMode os.FileMode = 0644

// write stores content at dest, or records the write in a dry run.
func (r *run) write(dest, rel, content string, previous *string) error {
	if r.opts.DryRun {
		r.result.Planned = append(r.result.Planned, Planned{
			Op:      WouldWrite,
			Path:    dest,
			Content: content,
			Diff:    unifiedDiff(rel, previous, content),
		})
		return nil
	}

	mode := defaultFileMode
	if info, err := r.fs.Stat(dest); err == nil {
		mode = info.Mode().Perm()
	}
	if err := r.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", dest)
	}
	if err := r.fs.WriteFile(dest, []byte(content), mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}
	return nil
}

// remove deletes path, or records the deletion in a dry run.
func (r *run) remove(path string) error {
	if r.opts.DryRun {
		r.result.Planned = append(r.result.Planned, Planned{Op: WouldDelete, Path: path})
		return nil
	}
	if err := r.fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete %s", path)
	}
	return nil
}

func unifiedDiff(rel string, previous *string, content string) string {
	from := "a/" + rel
	var before []string
	if previous != nil {
		before = difflib.SplitLines(*previous)
	} else {
		from = "/dev/null"
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        difflib.SplitLines(content),
		FromFile: from,
		ToFile:   "b/" + rel,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}
