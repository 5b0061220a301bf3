package whisper

// Config captures runtime settings for Whisper transcription.
type Config struct {
	// Binary is the whisper executable name or path.
	Binary string
	// Model is the model size to load (tiny, base, small, medium, large).
	Model string
	// Language hints the spoken language; empty lets whisper auto-detect.
	Language string
}

// Whisper invocation constants.
const (
	DefaultBinary = "whisper"
	DefaultModel  = "base"
	OutputFormat  = "txt"
)
