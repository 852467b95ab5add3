package sync

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/glob"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/arthur-debert/copyconfig/pkg/rules"
)

// run holds the state of one Syncer.Run invocation.
type run struct {
	*Syncer
	opts   Options
	result *Result

	// handled holds absolute destination paths the copy pass has dealt with.
	handled map[string]struct{}
}

func (r *run) copyPass(ctx context.Context) error {
	meta := merge.Meta{
		LocalRoot:   r.opts.LocalRoot,
		RemoteRoot:  r.opts.RemoteRoot,
		LocalOrigin: r.opts.LocalOrigin,
		Variables:   r.opts.Config.Variables,
	}

	for _, rule := range r.opts.Config.ByDecreasingPriority() {
		if err := ctx.Err(); err != nil {
			return err
		}

		matches, err := r.match(r.opts.RemoteRoot, rule)
		if err != nil {
			return err
		}
		r.logger.Trace().Str("pattern", rule.Pattern).Int("matches", len(matches)).Msg("matched rule")

		for _, rel := range matches {
			meta.Path = rel
			if err := r.copyFile(rule, rel, meta); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) copyFile(rule rules.Rule, rel string, meta merge.Meta) error {
	dest := filepath.Join(r.opts.LocalRoot, filepath.FromSlash(rel))
	if _, ok := r.handled[dest]; ok {
		r.record(ActionSkipHandled, rel, rule)
		r.logger.Info().
			Str("path", rel).
			Str("pattern", rule.Pattern).
			Msgf("skipping %s for pattern %s, already handled", rel, rule.Pattern)
		return nil
	}

	remotePath := filepath.Join(r.opts.RemoteRoot, filepath.FromSlash(rel))
	remote, err := r.fs.ReadFile(remotePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read remote file %s", remotePath)
	}
	local, err := r.readLocal(dest)
	if err != nil {
		return err
	}

	merged, err := merge.Apply(rule.Merge, merge.Input{Remote: string(remote), Local: local, Meta: meta})
	if err != nil {
		return errors.Wrapf(err, errors.ErrMergeFailed, "%s merge of %s (pattern %s) failed", rule.Merge, rel, rule.Pattern).
			WithDetail("path", rel).
			WithDetail("pattern", rule.Pattern)
	}
	r.handled[dest] = struct{}{}

	switch {
	case local != nil && merged == *local:
		r.record(ActionUpToDate, rel, rule)
		r.logger.Info().
			Str("path", rel).
			Str("pattern", rule.Pattern).
			Msgf("%s is already up to date", rel)
	case merged == "":
		r.record(ActionEmpty, rel, rule)
		r.logger.Info().
			Str("path", rel).
			Str("pattern", rule.Pattern).
			Msgf("%s merged to nothing, not writing", rel)
	default:
		r.record(ActionWrite, rel, rule)
		r.logger.Info().
			Str("path", rel).
			Str("pattern", rule.Pattern).
			Str("merge", rule.Merge.String()).
			Msgf("writing %s after matching pattern %s", rel, rule.Pattern)
		return r.write(dest, rel, merged, local)
	}
	return nil
}

func (r *run) purgePass(ctx context.Context) error {
	purged := make(map[string]struct{})

	for _, rule := range r.opts.Config.ByDecreasingPriority() {
		if err := ctx.Err(); err != nil {
			return err
		}

		matches, err := r.match(r.opts.LocalRoot, rule)
		if err != nil {
			return err
		}

		for _, rel := range matches {
			if _, ok := purged[rel]; ok {
				continue
			}
			remotePath := filepath.Join(r.opts.RemoteRoot, filepath.FromSlash(rel))
			if _, err := r.fs.Stat(remotePath); err == nil {
				continue
			} else if !os.IsNotExist(err) {
				return errors.Wrapf(err, errors.ErrFileRead, "failed to stat remote file %s", remotePath)
			}

			purged[rel] = struct{}{}
			r.record(ActionPurge, rel, rule)
			r.logger.Info().
				Str("path", rel).
				Str("pattern", rule.Pattern).
				Msgf("purging %s, matched pattern %s but missing remotely", rel, rule.Pattern)
			if err := r.remove(filepath.Join(r.opts.LocalRoot, filepath.FromSlash(rel))); err != nil {
				return err
			}
		}
	}
	return nil
}

// match globs rule against root and narrows the result to the filter.
func (r *run) match(root string, rule rules.Rule) ([]string, error) {
	matches, err := glob.Glob(r.fs, root, rule.Pattern, rule.Ignore)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to match %s in %s", rule.Pattern, root)
	}
	if r.opts.Filter == "" {
		return matches, nil
	}

	filtered := matches[:0]
	for _, rel := range matches {
		ok, err := glob.Match(r.opts.Filter, rel)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid filter %q", r.opts.Filter)
		}
		if ok {
			filtered = append(filtered, rel)
		}
	}
	return filtered, nil
}

// readLocal returns nil when the destination does not exist.
func (r *run) readLocal(dest string) (*string, error) {
	data, err := r.fs.ReadFile(dest)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read local file %s", dest)
	}
	s := string(data)
	return &s, nil
}

func (r *run) record(action Action, rel string, rule rules.Rule) {
	r.result.Events = append(r.result.Events, Event{
		Action:  action,
		Path:    rel,
		Pattern: rule.Pattern,
		Merge:   rule.Merge,
	})
}
