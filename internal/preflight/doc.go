// Package preflight verifies the runtime environment before a drain pass.
//
// Checks cover the pipeline directories (existence plus read, write, and
// traverse permission), the whisper binary, and the history ledger location.
// The status command renders the results; the drain command refuses to start
// when a required check fails.
package preflight
