package copyconfig

import (
	"fmt"
	"os"

	"github.com/arthur-debert/copyconfig/internal/version"
	"github.com/arthur-debert/copyconfig/pkg/logging"
	"github.com/arthur-debert/copyconfig/pkg/style"
	"github.com/arthur-debert/copyconfig/pkg/sync"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the parsed command line.
type options struct {
	verbosity   int
	repo        string
	ref         string
	path        string
	output      string
	configPath  string
	filter      string
	purge       bool
	aggressive  bool
	diffCheck   string
	dryRun      bool
	printConfig bool
	noColor     bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "copy-config",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgUsageExamples,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			if opts.noColor || !style.ColorEnabled(os.Stdout) {
				style.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&opts.repo, "repo", "", MsgFlagRepo)
	flags.StringVar(&opts.ref, "ref", "", MsgFlagRef)
	flags.StringVar(&opts.path, "path", "", MsgFlagPath)
	flags.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	flags.StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&opts.filter, "filter", "", MsgFlagFilter)
	flags.BoolVar(&opts.purge, "purge", false, MsgFlagPurge)
	flags.BoolVar(&opts.aggressive, "aggressive", false, MsgFlagAggressive)
	flags.StringVar(&opts.diffCheck, "diff-check", sync.DefaultDiffCheck, MsgFlagDiffCheck)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.printConfig, "print-config", false, MsgFlagPrintConfig)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
