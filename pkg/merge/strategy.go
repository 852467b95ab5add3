package merge

import (
	"github.com/arthur-debert/copyconfig/pkg/errors"
)

// Meta describes where a merge happens.
type Meta struct {
	// Path is the file path relative to both roots, slash separated.
	Path string
	// LocalRoot is the absolute path of the directory being synced into.
	LocalRoot string
	// RemoteRoot is the absolute path of the acquired source.
	RemoteRoot string
	// LocalOrigin is the git origin URL of LocalRoot, or "" when unknown.
	LocalOrigin string
	// Variables are the copyable name lists bound for this run.
	Variables Variables
}

// Input is everything a strategy gets to look at.
type Input struct {
	Remote string
	// Local is nil when the local file does not exist.
	Local *string
	Meta  Meta
}

// Strategy merges remote content into local content.
type Strategy func(in Input) (string, error)

var registry = map[StrategyKind]Strategy{
	Replace:               replace,
	PreferLocal:           preferLocal,
	Concat:                concat,
	JSONRemoteDefaults:    structured(jsonCodec, defaultsMerge),
	JSONAggressiveMerge:   structured(jsonCodec, aggressiveMerge),
	YAMLRemoteDefaults:    structured(yamlCodec, defaultsMerge),
	YAMLAggressiveMerge:   structured(yamlCodec, aggressiveMerge),
	PackageJSON:           structured(jsonCodec, packageJSON),
	AggressivePackageJSON: structured(jsonCodec, aggressivePackageJSON),
}

// Lookup returns the strategy registered for k.
func Lookup(k StrategyKind) (Strategy, error) {
	s, ok := registry[k]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "unknown merge strategy %q", k)
	}
	return s, nil
}

// Apply runs the strategy registered for k.
func Apply(k StrategyKind, in Input) (string, error) {
	s, err := Lookup(k)
	if err != nil {
		return "", err
	}
	return s(in)
}

// LocalString is a convenience for building an Input with existing local content.
func LocalString(s string) *string {
	return &s
}
