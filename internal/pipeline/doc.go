// Package pipeline implements the dropbox drain: single-item and collection
// processors plus the orchestrator that dispatches classified entries to
// them.
//
// Processing is strictly sequential. Each entry is fully handled before the
// next is considered, collection parts are transcribed one at a time in name
// order, and the transcription call blocks until the engine returns. Failure
// is contained per item: a failed entry stays in the dropbox for the next
// run and never stops the pass.
//
// Archival is the last step and is all-or-nothing for collections: a source
// directory moves to the processed directory only when every part it
// contained was transcribed in that run.
package pipeline
