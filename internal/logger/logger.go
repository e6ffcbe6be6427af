package logger

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aleister1102/recapurl/internal/config"
)

// Logger represents the main logger with configuration
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
	closer  io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// GetConfig returns the configuration the logger was built with
func (l *Logger) GetConfig() LoggerConfig {
	return l.config
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NewForRun creates a logger for one CLI invocation. Console output goes to
// console (os.Stderr when nil) and every entry carries runID.
func NewForRun(cfg config.LogConfig, runID string, console io.Writer) (*Logger, error) {
	return NewLoggerBuilder().
		WithConsoleWriter(console).
		WithRunID(runID).
		WithConfig(cfg).
		Build()
}

// NewRunID returns a fresh identifier for one CLI invocation
func NewRunID() string {
	return uuid.NewString()
}
