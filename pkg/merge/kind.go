package merge

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
)

// StrategyKind names a merge strategy. The string value is what config files use.
type StrategyKind string

const (
	// Replace writes the remote content verbatim.
	Replace StrategyKind = "replace"

	// PreferLocal keeps an existing local file, empty or not.
	PreferLocal StrategyKind = "prefer-local"

	// Concat takes the union of remote and local lines.
	Concat StrategyKind = "concat"

	// JSONRemoteDefaults fills keys missing locally from remote JSON.
	JSONRemoteDefaults StrategyKind = "json-remote-defaults"

	// JSONAggressiveMerge overlays remote JSON on local JSON.
	JSONAggressiveMerge StrategyKind = "json-aggressive-merge"

	// YAMLRemoteDefaults fills keys missing locally from remote YAML.
	YAMLRemoteDefaults StrategyKind = "yaml-remote-defaults"

	// YAMLAggressiveMerge overlays remote YAML on local YAML.
	YAMLAggressiveMerge StrategyKind = "yaml-aggressive-merge"

	// PackageJSON merges a trimmed-down remote package.json under the local one.
	PackageJSON StrategyKind = "package-json"

	// AggressivePackageJSON overlays the trimmed-down remote package.json,
	// keeping only the local name and version.
	AggressivePackageJSON StrategyKind = "aggressive-package-json"
)

// IsValid returns true if the kind is recognized.
func (k StrategyKind) IsValid() bool {
	_, ok := registry[k]
	return ok
}

// AllKinds returns every supported strategy kind.
func AllKinds() []StrategyKind {
	return []StrategyKind{
		Replace,
		PreferLocal,
		Concat,
		JSONRemoteDefaults,
		JSONAggressiveMerge,
		YAMLRemoteDefaults,
		YAMLAggressiveMerge,
		PackageJSON,
		AggressivePackageJSON,
	}
}

// String returns the string representation of the kind.
func (k StrategyKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k StrategyKind) Description() string {
	switch k {
	case Replace:
		return "Overwrite the local file with the remote file"
	case PreferLocal:
		return "Keep the local file if it exists, otherwise copy the remote file"
	case Concat:
		return "Keep all remote lines and append local lines the remote does not have"
	case JSONRemoteDefaults:
		return "Deep-merge JSON, local values win"
	case JSONAggressiveMerge:
		return "Deep-merge JSON, remote values win"
	case YAMLRemoteDefaults:
		return "Deep-merge YAML, local values win"
	case YAMLAggressiveMerge:
		return "Deep-merge YAML, remote values win"
	case PackageJSON:
		return "Adopt scripts and copyable dependencies from the remote package.json"
	case AggressivePackageJSON:
		return "Overlay the remote package.json, keeping the local name and version"
	default:
		return "Unknown strategy"
	}
}

// ParseStrategyKind converts a config file name into a StrategyKind.
func ParseStrategyKind(name string) (StrategyKind, error) {
	k := StrategyKind(strings.TrimSpace(name))
	if !k.IsValid() {
		names := make([]string, 0, len(AllKinds()))
		for _, kind := range AllKinds() {
			names = append(names, kind.String())
		}
		return "", errors.Newf(errors.ErrConfigValid, "unknown merge strategy %q (expected one of: %s)",
			name, strings.Join(names, ", "))
	}
	return k, nil
}

// aggressiveKinds pairs every kind with its remote-preferring counterpart.
var aggressiveKinds = map[StrategyKind]StrategyKind{
	Replace:               Replace,
	PreferLocal:           Replace,
	Concat:                Replace,
	JSONRemoteDefaults:    JSONAggressiveMerge,
	JSONAggressiveMerge:   JSONAggressiveMerge,
	YAMLRemoteDefaults:    YAMLAggressiveMerge,
	YAMLAggressiveMerge:   YAMLAggressiveMerge,
	PackageJSON:           AggressivePackageJSON,
	AggressivePackageJSON: AggressivePackageJSON,
}

// AggressiveOf returns the remote-preferring counterpart of k.
//
// A kind without a registered counterpart is a programming error and panics.
func AggressiveOf(k StrategyKind) StrategyKind {
	aggressive, ok := aggressiveKinds[k]
	if !ok {
		panic(fmt.Sprintf("merge: no aggressive counterpart registered for strategy %q", k))
	}
	return aggressive
}
