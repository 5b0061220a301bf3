// Package naming computes deterministic, non-destructive output and archive
// paths for the drain pipeline.
//
// All functions are pure path computation except for the single existence
// check behind the archive collision rule; nothing here writes to storage.
package naming
