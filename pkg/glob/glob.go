package glob

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

const metaChars = `*?[{\`

// Glob returns the files below root matching pattern and none of ignore.
func Glob(fsys types.FS, root, pattern string, ignore []string) ([]string, error) {
	patterns, err := Expand(pattern)
	if err != nil {
		return nil, err
	}
	ignorePatterns, err := expandAll(ignore)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, p := range patterns {
		if err := walkPattern(fsys, root, p, func(rel string) {
			seen[rel] = struct{}{}
		}); err != nil {
			return nil, err
		}
	}

	matches := make([]string, 0, len(seen))
	for rel := range seen {
		if matchAny(ignorePatterns, rel) {
			continue
		}
		matches = append(matches, rel)
	}
	sort.Strings(matches)
	return matches, nil
}

// Match reports whether the relative path rel matches pattern.
func Match(pattern, rel string) (bool, error) {
	patterns, err := Expand(pattern)
	if err != nil {
		return false, err
	}
	return matchAny(patterns, filepath.ToSlash(rel)), nil
}

// Expand turns a pattern into its brace-free alternatives with `.` path
// segments removed. Every alternative is a valid doublestar pattern.
func Expand(pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "empty glob pattern")
	}
	alternatives, err := expandBraces(filepath.ToSlash(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid glob pattern %q", pattern)
	}

	out := make([]string, 0, len(alternatives))
	seen := make(map[string]struct{}, len(alternatives))
	for _, alt := range alternatives {
		cleaned := cleanPattern(alt)
		if cleaned == "" {
			continue
		}
		if !doublestar.ValidatePattern(cleaned) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid glob pattern %q", pattern)
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out, nil
}

func expandAll(patterns []string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		expanded, err := Expand(p)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// walkPattern visits files under root that match the brace-free pattern p.
// Only the literal directory prefix of p is walked, and without `**` the walk
// stops at the depth the pattern can reach.
func walkPattern(fsys types.FS, root, p string, visit func(rel string)) error {
	segments := strings.Split(p, "/")
	literal := 0
	for literal < len(segments)-1 && !strings.ContainsAny(segments[literal], metaChars) {
		literal++
	}
	base := filepath.Join(root, filepath.FromSlash(path.Join(segments[:literal]...)))
	maxDepth := len(segments) - literal
	for _, seg := range segments[literal:] {
		if seg == "**" {
			maxDepth = -1
			break
		}
	}

	if _, err := fsys.Stat(base); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", base)
	}

	err := fsys.Walk(base, func(current string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relToBase, relErr := filepath.Rel(base, current)
		if relErr != nil {
			return relErr
		}
		depth := 0
		if relToBase != "." {
			depth = len(strings.Split(filepath.ToSlash(relToBase), "/"))
		}

		if info.IsDir() {
			if depth > 0 && info.Name() == ".git" {
				return filepath.SkipDir
			}
			if maxDepth >= 0 && depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if maxDepth >= 0 && depth > maxDepth {
			return nil
		}

		rel, relErr := filepath.Rel(root, current)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match(p, rel); ok {
			visit(rel)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot walk %s", base)
	}
	return nil
}

// cleanPattern drops `.` segments and a leading `./`.
func cleanPattern(p string) string {
	segments := strings.Split(p, "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == "." || seg == "" {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/")
}
