// Package execs is the process primitive: it runs external commands (git,
// the working-tree diff check) synchronously in a given directory and
// reports their output and exit status.
package execs
