package config

const (
	// Parser Defaults
	DefaultParserExpectedHost = "teams.microsoft.com"
	DefaultParserAPIVersion   = "v1.0"

	// Reporter Defaults
	DefaultReporterFormat = "json"
	DefaultReporterIndent = 2

	// Batch Defaults
	DefaultBatchMaxConcurrency = 8
	DefaultBatchSize           = 500

	// Log Defaults
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv names the environment variable consulted for the config file path.
	ConfigPathEnv = "RECAPURL_CONFIG_PATH"

	maxConfigFileSize = 1 << 20
)
