package copyconfig

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/config"
	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/execs"
	"github.com/arthur-debert/copyconfig/pkg/filesystem"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/rules"
	"github.com/arthur-debert/copyconfig/pkg/source"
	"github.com/arthur-debert/copyconfig/pkg/style"
	"github.com/arthur-debert/copyconfig/pkg/sync"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/spf13/cobra"
)

func (o *options) validate() error {
	if o.repo != "" && o.path != "" {
		return errors.New(errors.ErrConfigValid, MsgErrBothSources)
	}
	if o.purge && o.path != "" {
		return errors.New(errors.ErrConfigValid, MsgErrPurgeWithPath)
	}
	if o.ref != "" && o.path != "" {
		return errors.New(errors.ErrConfigValid, MsgErrRefWithPath)
	}
	if o.repo == "" && o.path == "" && !o.printConfig {
		return errors.New(errors.ErrInvalidInput, MsgErrNoSource)
	}
	return nil
}

func runCopy(cmd *cobra.Command, opts *options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.GetLogger("cli")

	fs := filesystem.NewOS()
	runner := execs.NewShellRunner()

	src, err := acquire(ctx, opts, fs, runner)
	if err != nil {
		return err
	}
	if src != nil {
		defer func() {
			if err := src.Close(); err != nil {
				logger.Warn().Err(err).Str("dir", src.Root).Msg("failed to clean up source checkout")
			}
		}()
	}

	cfg, err := loadConfig(opts, src)
	if err != nil {
		return err
	}
	if opts.printConfig {
		out, err := config.Render(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	output := opts.output
	if output == "" {
		if output, err = os.Getwd(); err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "cannot determine the current directory")
		}
	}
	if output, err = filepath.Abs(output); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid output directory %q", opts.output)
	}

	res, err := sync.New(fs, runner).Run(ctx, sync.Options{
		RemoteRoot:  src.Root,
		LocalRoot:   output,
		Config:      cfg,
		Filter:      opts.filter,
		Purge:       opts.purge,
		DryRun:      opts.dryRun,
		DiffCheck:   opts.diffCheck,
		LocalOrigin: source.LocalOrigin(ctx, runner, output),
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrPrecondition) {
			fmt.Fprintln(cmd.ErrOrStderr(), style.WarningStyle.Render(MsgHintDiffCheck))
		}
		return err
	}

	printReport(cmd.OutOrStdout(), output, res, opts.dryRun)
	return nil
}

func acquire(ctx context.Context, opts *options, fs types.FS, runner execs.Runner) (*source.Source, error) {
	switch {
	case opts.repo != "":
		return source.NewGitSource(fs, runner, source.DefaultCacheDir()).Acquire(ctx, opts.repo, opts.ref)
	case opts.path != "":
		return source.Local(fs, opts.path)
	default:
		return nil, nil
	}
}

func loadConfig(opts *options, src *source.Source) (rules.Config, error) {
	if opts.configPath == "" {
		return config.Default(opts.aggressive)
	}

	path := opts.configPath
	if strings.Contains(path, config.SourcePlaceholder) {
		if src == nil {
			return rules.Config{}, errors.New(errors.ErrInvalidInput, MsgErrSourceRequired)
		}
		path = config.ResolvePath(path, src.Root)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return rules.Config{}, err
	}
	if opts.aggressive {
		cfg = rules.MakeAggressive(cfg)
	}
	return cfg, nil
}

func printReport(w io.Writer, output string, res *sync.Result, dryRun bool) {
	if dryRun {
		for _, p := range res.Planned {
			rel, err := filepath.Rel(output, p.Path)
			if err != nil {
				rel = p.Path
			}
			switch p.Op {
			case sync.WouldWrite:
				fmt.Fprintf(w, MsgWouldWrite, style.PlanIndicator(), style.PathStyle.Render(rel))
				fmt.Fprint(w, style.Diff(p.Diff))
			case sync.WouldDelete:
				fmt.Fprintf(w, MsgWouldDelete, style.DeleteIndicator(), style.PathStyle.Render(rel))
			}
		}
		fmt.Fprintln(w, style.WarningStyle.Render(MsgDryRunNotice))
		return
	}

	if !res.Changed() {
		fmt.Fprintln(w, style.SuccessStyle.Render(MsgNothingToDo))
		return
	}
	for _, e := range res.Events {
		switch e.Action {
		case sync.ActionWrite:
			fmt.Fprintf(w, "%s %s\n", style.WriteIndicator(), style.PathStyle.Render(e.Path))
		case sync.ActionUpToDate:
			fmt.Fprintf(w, "%s %s\n", style.SkipIndicator(), style.MutedStyle.Render(e.Path))
		case sync.ActionPurge:
			fmt.Fprintf(w, "%s %s\n", style.DeleteIndicator(), style.PathStyle.Render(e.Path))
		}
	}
	summary := fmt.Sprintf(MsgSummaryFormat, res.Count(sync.ActionWrite), res.Count(sync.ActionUpToDate), res.Count(sync.ActionPurge))
	fmt.Fprintln(w, style.InfoStyle.Render(summary))
}
