// Package language normalizes language names and ISO codes for the
// transcription engine's language hint.
package language
