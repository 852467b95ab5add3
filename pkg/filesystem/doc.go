// Package filesystem provides filesystem implementations for copy-config.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed one that tests
// use with an in-memory tree.
package filesystem
