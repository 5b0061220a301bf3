// Package whisper invokes the OpenAI Whisper CLI to turn audio into text.
//
// This package handles:
//   - Engine availability checks at run startup
//   - Synchronous transcription of one audio file at a time
//   - Transcript text extraction from the engine's txt output
//
// Model size and language are passed via Config and fixed for the lifetime
// of a Service, which the drain pipeline constructs once per run.
package whisper
