// Package sync runs the copy and purge passes that bring a local directory in
// line with a remote one.
//
// # Copy pass
//
// Rules are visited from highest to lowest priority (the reverse of their
// declaration order). Each rule's pattern is matched against the remote
// root, narrowed by the optional filter, and every matched file is merged
// into the local root with the rule's strategy. A file is handled by the
// first rule that reaches it; later rules matching the same file only log
// that they skipped it. That is how a specific rule declared late, such as
// ./package.json, beats a broad one declared early, such as *.json.
//
// For every file the outcome is one of:
//
//	write         merged content differs from the local file and is written
//	up-to-date    merged content equals the local file
//	empty         the strategy produced nothing, no file is written
//	skip-handled  an earlier visited rule already handled the file
//
// # Purge pass
//
// With purge enabled the same rules are matched against the local root and
// every matched file that has no remote counterpart is deleted. The filter
// applies here too, so files outside it are never deleted. Purge keeps its
// own bookkeeping and does not look at what the copy pass handled.
//
// # Dry runs
//
// A dry run performs every read, match and merge and emits the same events
// and log lines as a real run. Writes and deletions are recorded in
// Result.Planned, with a unified diff for writes, instead of touching the
// filesystem.
package sync
