package copyconfig

// Command descriptions
const (
	MsgRootShort = "Copy config files from a template repository, merging with what you have"
	MsgRootLong  = `copy-config copies configuration files (tsconfig.json, .gitignore, CI
workflows, package.json, ...) from a remote project into the current one.

Each file is merged according to the first matching rule, walking rules from
the last declared to the first: JSON and YAML files are deep-merged, ignore
files are unioned line by line, scripts are kept if they already exist and
package.json picks up scripts and copyable dev dependencies.

Pass --aggressive to let remote values win over local ones.`
	MsgVersionShort = "Print version information"

	MsgUsageExamples = `  copy-config --repo mmkal/eslint-plugin-codegen
  copy-config --repo https://gitlab.com/acme/template.git --ref v2 --purge
  copy-config --path ../template --filter './tsconfig.json' --aggressive
  copy-config --repo acme/template --config '%source%/copy-config.toml' --dry-run`
)

// Flag descriptions
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRepo        = "Repository to copy from (owner/name for GitHub, or a clone URL)"
	MsgFlagRef         = "Branch, tag or commit to check out"
	MsgFlagPath        = "Local directory to copy from instead of a repository"
	MsgFlagOutput      = "Directory to copy into (defaults to the current directory)"
	MsgFlagConfig      = "Config file with rules (%source% is replaced by the source directory)"
	MsgFlagFilter      = "Only consider files matching this glob"
	MsgFlagPurge       = "Delete local files matched by a rule that no longer exist remotely"
	MsgFlagAggressive  = "Prefer remote values over local ones"
	MsgFlagDiffCheck   = "Command that must succeed in the output directory before files are changed (empty to disable)"
	MsgFlagDryRun      = "Show what would change without writing anything"
	MsgFlagPrintConfig = "Print the effective config as TOML and exit"
	MsgFlagNoColor     = "Disable colored output"
)

// Output
const (
	MsgDryRunNotice  = "\nDRY RUN MODE - No changes were made"
	MsgNothingToDo   = "Everything is up to date."
	MsgSummaryFormat = "%d written, %d up to date, %d purged"
	MsgWouldWrite    = "%s would write %s\n"
	MsgWouldDelete   = "%s would delete %s\n"
	MsgVersionFormat = "copy-config version %s\n  commit: %s\n  built:  %s\n"
	MsgErrorPrefix   = "Error: %v"
	MsgHintDiffCheck = "Hint: commit or stash your changes first, or pass --diff-check=''"
)

// Errors
const (
	MsgErrNoSource       = "one of --repo or --path is required"
	MsgErrBothSources    = "--repo and --path cannot be used together"
	MsgErrPurgeWithPath  = "--purge cannot be used with --path"
	MsgErrRefWithPath    = "--ref can only be used with --repo"
	MsgErrSourceRequired = "--config uses %source% but no --repo or --path was given"
)
