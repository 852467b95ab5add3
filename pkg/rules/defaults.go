package rules

import "github.com/arthur-debert/copyconfig/pkg/merge"

// DefaultConfig returns the built-in local-preserving rule set.
func DefaultConfig() Config {
	return Config{
		Variables: merge.DefaultVariables(),
		Rules: []Rule{
			{Pattern: "{.,.vscode,.devcontainer,config}/*.json", Merge: merge.JSONRemoteDefaults},
			{Pattern: "{.,.vscode,.devcontainer,config}/*.{yml,yaml}", Merge: merge.YAMLRemoteDefaults},
			{Pattern: "*.code-workspace", Merge: merge.JSONRemoteDefaults},
			{Pattern: ".{gitignore,prettierignore,eslintignore,npmignore}", Merge: merge.Concat},
			{Pattern: "./.*.{js,cjs}", Merge: merge.PreferLocal},
			{Pattern: "./*.{js,cjs,ts,mjs}", Merge: merge.PreferLocal},
			{Pattern: ".github/**/*.{yml,yaml}", Merge: merge.YAMLRemoteDefaults},
			{Pattern: ".github/**/*.md", Merge: merge.PreferLocal},
			{Pattern: "./package.json", Merge: merge.PackageJSON},
		},
	}
}

// AggressiveConfig returns the remote-preferring counterpart of DefaultConfig.
func AggressiveConfig() Config {
	return MakeAggressive(DefaultConfig())
}
