// Test Type: Unit Test
// Description: Tests for source acquisition with a scripted git runner

package source_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/execs"
	"github.com/arthur-debert/copyconfig/pkg/filesystem"
	"github.com/arthur-debert/copyconfig/pkg/source"
	"github.com/arthur-debert/copyconfig/pkg/testutil"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRepo(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "mmkal/eslint-plugin-codegen", want: "https://github.com/mmkal/eslint-plugin-codegen"},
		{in: "https://gitlab.com/group/project.git", want: "https://gitlab.com/group/project.git"},
		{in: "ssh://git@github.com/o/r.git", want: "ssh://git@github.com/o/r.git"},
		{in: "owner/repo name", wantErr: true},
		{in: "owner/repo\n", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := source.NormalizeRepo(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// gitFake simulates git against the in-memory filesystem.
func gitFake(fs types.FS, failRefs map[string]bool) *testutil.FakeRunner {
	return &testutil.FakeRunner{Handler: func(dir string, argv []string) (*execs.Result, error) {
		cmd := strings.Join(argv, " ")
		switch {
		case strings.HasPrefix(cmd, "git clone "):
			root := filepath.Join(dir, argv[len(argv)-1])
			if err := fs.MkdirAll(root, 0755); err != nil {
				return nil, err
			}
			if err := fs.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644); err != nil {
				return nil, err
			}
			return &execs.Result{}, nil
		case strings.HasPrefix(cmd, "git -c advice.detachedHead=false checkout "):
			if failRefs[argv[len(argv)-1]] {
				return &execs.Result{ExitCode: 1, Stderr: "pathspec did not match"}, nil
			}
			return &execs.Result{}, nil
		case cmd == "git rev-parse HEAD":
			return &execs.Result{Stdout: "abc123\n"}, nil
		default:
			return &execs.Result{}, nil
		}
	}}
}

func TestGitSource_Acquire(t *testing.T) {
	fs := filesystem.NewMemory()
	runner := gitFake(fs, nil)
	g := source.NewGitSource(fs, runner, "/cache/copy-config")

	src, err := g.Acquire(context.Background(), "mmkal/eslint-plugin-codegen", "v0.17.0")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/mmkal/eslint-plugin-codegen", src.Repo)
	assert.Equal(t, "v0.17.0", src.Ref)
	assert.Equal(t, "abc123", src.Commit)
	assert.False(t, src.IsLocal())
	assert.True(t, strings.HasPrefix(src.Root, "/cache/copy-config/github.com/mmkal/eslint-plugin-codegen/"), src.Root)
	assert.Equal(t, "repo", filepath.Base(src.Root))

	assert.Equal(t, []string{
		"git clone https://github.com/mmkal/eslint-plugin-codegen repo",
		"git fetch --tags origin",
		"git -c advice.detachedHead=false checkout v0.17.0",
		"git rev-parse HEAD",
	}, runner.Commands())
	assert.Equal(t, src.Root, runner.Calls[1].Dir)

	_, err = fs.Stat(filepath.Join(src.Root, "package.json"))
	require.NoError(t, err)

	require.NoError(t, src.Close())
	_, err = fs.Stat(src.Root)
	assert.Error(t, err)
}

func TestGitSource_AcquireWithoutRef(t *testing.T) {
	fs := filesystem.NewMemory()
	runner := gitFake(fs, nil)

	src, err := source.NewGitSource(fs, runner, "/cache").Acquire(context.Background(), "o/r", "")
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"git clone https://github.com/o/r repo", "git rev-parse HEAD"}, runner.Commands())
}

func TestGitSource_RemoteBranchFallback(t *testing.T) {
	fs := filesystem.NewMemory()
	runner := gitFake(fs, map[string]bool{"feature": true})

	src, err := source.NewGitSource(fs, runner, "/cache").Acquire(context.Background(), "o/r", "feature")
	require.NoError(t, err)
	defer src.Close()

	assert.Contains(t, runner.Commands(), "git -c advice.detachedHead=false checkout origin/feature")
}

func TestGitSource_CheckoutFailureCleansUp(t *testing.T) {
	fs := filesystem.NewMemory()
	runner := gitFake(fs, map[string]bool{"nope": true, "origin/nope": true})

	_, err := source.NewGitSource(fs, runner, "/cache").Acquire(context.Background(), "o/r", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceAcquire))
	assert.Contains(t, err.Error(), "pathspec did not match")

	assert.Empty(t, testutil.ReadTree(t, fs, "/cache/github.com/o/r"))
}

func TestGitSource_InvalidInput(t *testing.T) {
	fs := filesystem.NewMemory()
	runner := gitFake(fs, nil)
	g := source.NewGitSource(fs, runner, "/cache")

	for _, tc := range []struct{ repo, ref string }{
		{"bad repo", ""},
		{"o/r", "--upload-pack=evil"},
		{"o/r", "two words"},
	} {
		_, err := g.Acquire(context.Background(), tc.repo, tc.ref)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
	assert.Empty(t, runner.Calls)
}

func TestLocal(t *testing.T) {
	fs := filesystem.NewMemory()
	testutil.WriteTree(t, fs, "/src", map[string]string{"a.json": "{}"})

	src, err := source.Local(fs, "/src")
	require.NoError(t, err)
	assert.Equal(t, "/src", src.Root)
	assert.True(t, src.IsLocal())
	assert.NoError(t, src.Close())

	_, err = source.Local(fs, "/missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceAcquire))

	_, err = source.Local(fs, "/src/a.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceAcquire))
}

func TestLocalOrigin(t *testing.T) {
	runner := &testutil.FakeRunner{Handler: func(dir string, argv []string) (*execs.Result, error) {
		if dir == "/with-origin" {
			return &execs.Result{Stdout: "https://github.com/me/project.git\n"}, nil
		}
		return &execs.Result{ExitCode: 2, Stderr: "error: No such remote 'origin'"}, nil
	}}

	assert.Equal(t, "https://github.com/me/project.git", source.LocalOrigin(context.Background(), runner, "/with-origin"))
	assert.Equal(t, "", source.LocalOrigin(context.Background(), runner, "/without"))
	assert.Equal(t, []string{"git", "remote", "get-url", "origin"}, runner.Calls[0].Argv)
}
