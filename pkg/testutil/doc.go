// Package testutil provides helpers shared by the package tests.
//
// Key components:
//   - WriteTree / ReadTree: declare and inspect file trees inline
//   - RecordingFS: a types.FS wrapper that counts mutations and injects errors
//   - FakeRunner: a scripted execs.Runner that records every call
//   - CaptureLogs: redirect the global zerolog logger into a buffer
//
// Tests should run against filesystem.NewMemory() unless they exercise real
// processes or the OS filesystem itself.
package testutil
