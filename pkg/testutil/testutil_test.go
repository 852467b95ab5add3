// Test Type: Unit Test
// Description: Tests for the shared test helpers

package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/execs"
	"github.com/arthur-debert/copyconfig/pkg/filesystem"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeRoundTrip(t *testing.T) {
	fs := filesystem.NewMemory()
	files := map[string]string{
		"package.json":             "{}",
		".github/workflows/ci.yml": "name: ci",
	}
	testutil.WriteTree(t, fs, "/work", files)
	assert.Equal(t, files, testutil.ReadTree(t, fs, "/work"))
	assert.Empty(t, testutil.ReadTree(t, fs, "/missing"))
}

func TestRecordingFS(t *testing.T) {
	rec := testutil.NewRecordingFS(filesystem.NewMemory())
	require.NoError(t, rec.MkdirAll("/a", 0755))
	require.NoError(t, rec.WriteFile("/a/x", []byte("x"), 0644))
	require.NoError(t, rec.Remove("/a/x"))
	assert.Equal(t, 3, rec.Mutations())

	boom := errors.New("boom")
	rec.FailOn("/a/y", boom)
	assert.ErrorIs(t, rec.WriteFile("/a/y", nil, 0644), boom)
	assert.Equal(t, 3, rec.Mutations())
}

func TestFakeRunner(t *testing.T) {
	r := &testutil.FakeRunner{Handler: func(dir string, argv []string) (*execs.Result, error) {
		return &execs.Result{Stdout: dir, ExitCode: len(argv)}, nil
	}}

	res, err := r.Run(context.Background(), "/work", []string{"git", "status"})
	require.NoError(t, err)
	assert.Equal(t, "/work", res.Stdout)
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, []string{"git status"}, r.Commands())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, "/work", []string{"git"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, r.Calls, 1)
}

func TestCaptureLogs(t *testing.T) {
	buf := testutil.CaptureLogs(t)
	logger := logging.GetLogger("test")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
