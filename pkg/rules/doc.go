// Package rules holds the ordered rule set that decides which merge strategy
// applies to which file.
//
// # Rule Priority
//
// Rules are declared from lowest to highest priority. When a file matches
// several rules, the one declared last wins, so specific rules are declared
// after the broad ones they refine:
//
//	[[rules]]
//	pattern = "{.,.vscode,.devcontainer,config}/*.json"
//	merge = "json-remote-defaults"
//
//	[[rules]]
//	pattern = "./package.json"
//	merge = "package-json"
//
// The sync walk visits rules with ByDecreasingPriority and never hands a
// file to a second rule.
//
// # Aggressive Configs
//
// MakeAggressive maps every rule's strategy to its remote-preferring
// counterpart (see merge.AggressiveOf) while keeping patterns and order.
package rules
