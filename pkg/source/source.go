package source

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/execs"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/rs/zerolog"
)

const (
	githubPrefix = "https://github.com/"
	cloneDirName = "repo"
)

var whitespace = regexp.MustCompile(`\s`)

// Source is an acquired directory of files to copy from.
type Source struct {
	// Root is the directory remote files are read from.
	Root string
	// Repo is the normalized repository URL, empty for local sources.
	Repo string
	// Ref is the checked out ref, if any.
	Ref string
	// Commit is the checked out commit, empty for local sources.
	Commit string

	cleanup func() error
}

// IsLocal reports whether the source is a plain directory.
func (s *Source) IsLocal() bool {
	return s.Repo == ""
}

// Close removes any temporary checkout.
func (s *Source) Close() error {
	if s.cleanup == nil {
		return nil
	}
	return s.cleanup()
}

// NormalizeRepo turns a repo reference into a clone URL. References without
// a scheme are GitHub owner/name shorthands.
func NormalizeRepo(repo string) (string, error) {
	if repo == "" {
		return "", errors.New(errors.ErrInvalidInput, "repo must not be empty")
	}
	if whitespace.MatchString(repo) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid repo: %q", repo)
	}
	if !strings.Contains(repo, "://") {
		repo = githubPrefix + repo
	}
	return repo, nil
}

func validateRef(ref string) error {
	if whitespace.MatchString(ref) || strings.HasPrefix(ref, "-") {
		return errors.Newf(errors.ErrInvalidInput, "invalid ref: %q", ref)
	}
	return nil
}

// DefaultCacheDir is where clones are made.
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, logging.AppName)
}

// GitSource clones repositories by shelling out to git.
type GitSource struct {
	fs       types.FS
	runner   execs.Runner
	cacheDir string
	logger   zerolog.Logger
}

// NewGitSource creates a GitSource cloning below cacheDir.
func NewGitSource(fs types.FS, runner execs.Runner, cacheDir string) *GitSource {
	return &GitSource{
		fs:       fs,
		runner:   runner,
		cacheDir: cacheDir,
		logger:   logging.GetLogger("source"),
	}
}

// Acquire clones repo into a new temporary directory and checks out ref
// when given. Close the returned Source to remove the clone.
func (g *GitSource) Acquire(ctx context.Context, repo, ref string) (*Source, error) {
	url, err := NormalizeRepo(repo)
	if err != nil {
		return nil, err
	}
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(g.logger, "acquire "+url)()

	parent := filepath.Join(g.cacheDir, cachePath(url))
	if err := g.fs.MkdirAll(parent, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent)
	}
	tmp, err := g.fs.MkdirTemp(parent, "checkout-")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create temp dir in %s", parent)
	}
	src := &Source{
		Root:    filepath.Join(tmp, cloneDirName),
		Repo:    url,
		Ref:     ref,
		cleanup: func() error { return g.fs.RemoveAll(tmp) },
	}

	if err := g.checkout(ctx, tmp, src); err != nil {
		if cerr := src.Close(); cerr != nil {
			g.logger.Warn().Err(cerr).Str("dir", tmp).Msg("failed to remove checkout")
		}
		return nil, errors.Wrapf(err, errors.ErrSourceAcquire, "failed to acquire %s", url).
			WithDetail("repo", url).
			WithDetail("ref", ref)
	}

	g.logger.Info().
		Str("repo", url).
		Str("ref", ref).
		Str("commit", src.Commit).
		Str("dir", src.Root).
		Msg("acquired source")
	return src, nil
}

func (g *GitSource) checkout(ctx context.Context, tmp string, src *Source) error {
	if _, err := execs.RunChecked(ctx, g.runner, tmp, []string{"git", "clone", src.Repo, cloneDirName}); err != nil {
		return err
	}

	if src.Ref != "" {
		if _, err := execs.RunChecked(ctx, g.runner, src.Root, []string{"git", "fetch", "--tags", "origin"}); err != nil {
			return err
		}
		// Tags, hashes and local branches first, then remote branches.
		_, err := execs.RunChecked(ctx, g.runner, src.Root, checkoutArgs(src.Ref))
		if err != nil {
			if _, rerr := execs.RunChecked(ctx, g.runner, src.Root, checkoutArgs("origin/"+src.Ref)); rerr != nil {
				return errors.Wrapf(err, errors.ErrSourceAcquire, "git checkout failed for ref %q (tried both direct and remote)", src.Ref)
			}
		}
	}

	res, err := execs.RunChecked(ctx, g.runner, src.Root, []string{"git", "rev-parse", "HEAD"})
	if err != nil {
		return err
	}
	src.Commit = strings.TrimSpace(res.Stdout)
	return nil
}

func checkoutArgs(ref string) []string {
	return []string{"git", "-c", "advice.detachedHead=false", "checkout", ref}
}

// cachePath maps a clone URL to a relative directory, host first.
func cachePath(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		url = url[i+3:]
	}
	if i := strings.LastIndex(url, "@"); i >= 0 {
		url = url[i+1:]
	}
	url = strings.TrimSuffix(url, ".git")

	var parts []string
	for _, p := range strings.FieldsFunc(url, func(r rune) bool { return r == '/' || r == ':' || r == '\\' }) {
		if p == "." || p == ".." {
			p = "_"
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return "_"
	}
	return filepath.Join(parts...)
}

// Local uses an existing directory as the source.
func Local(fs types.FS, path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", path)
	}
	info, err := fs.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceAcquire, "cannot read source directory %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceAcquire, "source %s is not a directory", abs)
	}
	return &Source{Root: abs}, nil
}

// LocalOrigin returns the origin URL of the git checkout at dir, or "" when
// dir is not a checkout or has no origin.
func LocalOrigin(ctx context.Context, runner execs.Runner, dir string) string {
	res, err := runner.Run(ctx, dir, []string{"git", "remote", "get-url", "origin"})
	if err != nil || res.ExitCode != 0 {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}
