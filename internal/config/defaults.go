package config

const (
	defaultBaseDir              = "~/.local/share/scribe"
	defaultLogDir               = "~/.local/share/scribe/logs"
	defaultDropboxDirName       = "dropbox"
	defaultOutputDirName        = "output"
	defaultProcessedDirName     = "processed"
	defaultWhisperBinary        = "whisper"
	defaultWhisperModel         = "base"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultNotifyRequestTimeout = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDir: defaultBaseDir,
			LogDir:  defaultLogDir,
		},
		Whisper: Whisper{
			Binary: defaultWhisperBinary,
			Model:  defaultWhisperModel,
		},
		History: History{
			Enabled: true,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			RunSummary:     true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
