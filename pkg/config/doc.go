// Package config loads rule sets from config files.
//
// A config file may be TOML, YAML or JSON, picked by its extension:
//
//	extends = "default"    # or "aggressive" or "none"
//	aggressive = false     # swap every strategy for its aggressive counterpart
//
//	[variables]
//	copyable_dev_dependencies = ["jest", "eslint"]
//
//	[[rules]]
//	pattern = "tsconfig*.json"
//	ignore = ["tsconfig.build.json"]
//	merge = "json-aggressive-merge"
//
// Rules from the file are declared after the rules of the preset they
// extend, so they take priority over them. Variables given in the file
// replace the preset's lists, and COPY_CONFIG_COPYABLE_DEPENDENCIES and
// COPY_CONFIG_COPYABLE_DEV_DEPENDENCIES (comma separated) replace both.
package config
