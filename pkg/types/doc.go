// Package types defines the interfaces shared across copy-config packages,
// most importantly the FS abstraction that the glob primitive, the source
// acquisition layer and the sync engine all read and write through.
package types
