package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/recapurl/internal/config"
)

// LoggerConfig holds configuration for logger setup
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
	// RunID groups the log file of one CLI invocation under runs/<RunID>/.
	RunID      string
	UseSubdirs bool
	// Console receives console output; nil means os.Stderr.
	Console io.Writer
}

// LogFormat selects how entries are rendered
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatJSON
	FormatText
)

var logFormatNames = map[LogFormat]string{
	FormatConsole: "console",
	FormatJSON:    "json",
	FormatText:    "text",
}

func (lf LogFormat) String() string {
	if name, ok := logFormatNames[lf]; ok {
		return name
	}
	return logFormatNames[FormatConsole]
}

// parseFormat maps a log_format value to a LogFormat; unknown values render
// as console output.
func parseFormat(s string) LogFormat {
	for format, name := range logFormatNames {
		if strings.EqualFold(s, name) {
			return format
		}
	}
	return FormatConsole
}

// DefaultLoggerConfig returns an info-level console logger with the rotation
// limits from the config defaults.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		MaxSizeMB:     config.DefaultMaxLogSizeMB,
		MaxBackups:    config.DefaultMaxLogBackups,
		UseSubdirs:    true,
	}
}
