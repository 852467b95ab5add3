package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/execs"
	"github.com/arthur-debert/copyconfig/pkg/glob"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/arthur-debert/copyconfig/pkg/rules"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDiffCheck refuses to sync into a working tree with uncommitted changes.
const DefaultDiffCheck = "git diff --exit-code"

// Action is what happened to one matched file.
type Action string

const (
	ActionWrite       Action = "write"
	ActionUpToDate    Action = "up-to-date"
	ActionEmpty       Action = "empty"
	ActionSkipHandled Action = "skip-handled"
	ActionPurge       Action = "purge"
)

// Event records the outcome for one file matched by one rule.
type Event struct {
	Action  Action
	Path    string // relative to both roots, slash separated
	Pattern string
	Merge   merge.StrategyKind
}

// PlannedOp is a filesystem change a dry run would have made.
type PlannedOp string

const (
	WouldWrite  PlannedOp = "would-write"
	WouldDelete PlannedOp = "would-delete"
)

// Planned is one recorded dry-run change.
type Planned struct {
	Op      PlannedOp
	Path    string // absolute destination path
	Content string // new content for writes
	Diff    string // unified diff against the current local file, for writes
}

// Result is the audit trail of a run.
type Result struct {
	Events  []Event
	Planned []Planned
}

// Count returns how many events have the given action.
func (r *Result) Count(action Action) int {
	n := 0
	for _, e := range r.Events {
		if e.Action == action {
			n++
		}
	}
	return n
}

// Changed reports whether the run wrote or deleted, or would have.
func (r *Result) Changed() bool {
	return r.Count(ActionWrite) > 0 || r.Count(ActionPurge) > 0
}

// Options configures one run.
type Options struct {
	// RemoteRoot is the directory files are copied from.
	RemoteRoot string
	// LocalRoot is the directory files are merged into.
	LocalRoot string
	// Config is the ordered rule set, lowest priority first.
	Config rules.Config
	// Filter, when set, restricts both passes to files matching this glob.
	Filter string
	// Purge deletes local files matched by a rule but missing remotely.
	Purge bool
	// DryRun records writes and deletions instead of performing them.
	DryRun bool
	// DiffCheck is run in LocalRoot before a real run and must exit zero.
	// Empty disables the check.
	DiffCheck string
	// LocalOrigin is the git origin URL of LocalRoot, used by package.json merges.
	LocalOrigin string
}

// Syncer runs sync passes over a filesystem.
type Syncer struct {
	fs     types.FS
	runner execs.Runner
	logger zerolog.Logger
}

// New creates a Syncer. runner is only used for the diff check.
func New(fs types.FS, runner execs.Runner) *Syncer {
	return &Syncer{
		fs:     fs,
		runner: runner,
		logger: logging.GetLogger("sync"),
	}
}

// Run performs the copy pass and, when enabled, the purge pass.
//
// A strategy error aborts the run. Files written before the failure stay
// written.
func (s *Syncer) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(s.logger, "sync")()

	if err := s.diffCheck(ctx, opts); err != nil {
		return nil, err
	}

	r := &run{
		Syncer:  s,
		opts:    opts,
		result:  &Result{},
		handled: make(map[string]struct{}),
	}
	if err := r.copyPass(ctx); err != nil {
		return r.result, err
	}
	if opts.Purge {
		if err := r.purgePass(ctx); err != nil {
			return r.result, err
		}
	}

	s.logger.Info().
		Int("written", r.result.Count(ActionWrite)).
		Int("upToDate", r.result.Count(ActionUpToDate)).
		Int("purged", r.result.Count(ActionPurge)).
		Msg("sync finished")
	return r.result, nil
}

func validate(opts Options) error {
	if opts.RemoteRoot == "" {
		return errors.New(errors.ErrInvalidInput, "remote root is required")
	}
	if opts.LocalRoot == "" {
		return errors.New(errors.ErrInvalidInput, "local root is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	if opts.Filter != "" {
		if _, err := glob.Expand(opts.Filter); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid filter %q", opts.Filter)
		}
	}
	return nil
}

// diffCheck runs the configured command in the local root. Dry runs change
// nothing and skip it.
func (s *Syncer) diffCheck(ctx context.Context, opts Options) error {
	if opts.DryRun || strings.TrimSpace(opts.DiffCheck) == "" {
		return nil
	}

	argv, err := execs.Parse(opts.DiffCheck)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid diff check %q", opts.DiffCheck)
	}
	if _, err := execs.RunChecked(ctx, s.runner, opts.LocalRoot, argv); err != nil {
		return errors.Wrap(err, errors.ErrPrecondition,
			fmt.Sprintf("diff check %q failed in %s; commit or stash local changes, or disable the check", opts.DiffCheck, opts.LocalRoot)).
			WithDetail("command", opts.DiffCheck)
	}
	s.logger.Debug().Str("command", opts.DiffCheck).Msg("diff check passed")
	return nil
}
