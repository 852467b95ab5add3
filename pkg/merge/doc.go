// Package merge implements the merge strategies applied to a single file.
//
// A strategy receives the remote file content, the local content (nil when
// the local file does not exist) and some metadata about the run, and returns
// the content that should end up in the local file. Strategies are pure: they
// never touch the filesystem or run processes. Anything they need from the
// outside world, such as the local git origin, is resolved once by the caller
// and handed in through Meta.
//
// Every StrategyKind has an aggressive counterpart (see AggressiveOf) that
// prefers remote content over local customizations.
package merge
