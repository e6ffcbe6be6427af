package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
	"github.com/aleister1102/recapurl/internal/config"
)

// FromLogConfig maps the log_config section onto a LoggerConfig. Console
// output is always on; the file writer is enabled by log_file. An unknown
// level is returned as an error together with a usable info-level config.
func FromLogConfig(cfg config.LogConfig) (LoggerConfig, error) {
	out := DefaultLoggerConfig()
	out.Format = parseFormat(cfg.LogFormat)
	out.EnableFile = cfg.FileEnabled()
	out.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		out.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		out.MaxBackups = cfg.MaxLogBackups
	}

	level, err := parseLevel(cfg.LogLevel)
	out.Level = level
	return out, err
}

// parseLevel accepts zerolog level names in any case. Empty means info.
func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}
