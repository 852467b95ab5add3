package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files below root. Keys are slash-separated relative paths.
func WriteTree(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}

// ReadTree returns every regular file below root keyed by its
// slash-separated relative path. A missing root yields an empty map.
func ReadTree(t *testing.T, fs types.FS, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	if _, err := fs.Stat(root); os.IsNotExist(err) {
		return out
	}
	err := fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := fs.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}
