// Package source acquires the directory configuration files are copied from.
//
// A source is either a git repository, cloned into a fresh directory under
// the XDG cache home and checked out at an optional ref, or a plain local
// directory used as-is.
package source
