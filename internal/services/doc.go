// Package services defines the error taxonomy shared by pipeline components
// and the clients for external collaborators in its subpackages.
//
// Sentinel errors classify every failure kind the drain pipeline reports:
// missing sources, transcription engine failures, archival move failures,
// configuration problems, and missing external tools. Wrap tags an error
// with one of these markers plus component/operation context so callers can
// classify with errors.Is while logs stay readable.
package services
