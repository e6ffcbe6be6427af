package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
	"github.com/aleister1102/recapurl/internal/config"
	"github.com/aleister1102/recapurl/internal/logger"
	"github.com/aleister1102/recapurl/internal/recap"
	"github.com/aleister1102/recapurl/internal/reporter"
)

// globalFlags are shared by every subcommand. Zero values leave the
// config file (or its defaults) in charge.
type globalFlags struct {
	configPath string
	logLevel   string
	format     string
	envFile    string
}

// app bundles what a command needs for one run.
type app struct {
	cfg      *config.GlobalConfig
	log      *logger.Logger
	parser   *recap.Parser
	reporter *reporter.Reporter
}

func (a *app) logger() *zerolog.Logger {
	return a.log.GetZerolog()
}

func (a *app) close() {
	_ = a.log.Close()
}

// newApp loads .env and config, applies flag overrides, validates the result
// and builds the logger, parser and reporter.
func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, errorwrapper.WrapError(err, "could not load env file")
	}

	cfg, err := config.LoadGlobalConfig(flags.configPath, zerolog.Nop())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not load config")
	}

	if flags.logLevel != "" {
		cfg.LogConfig.LogLevel = flags.logLevel
	}
	if flags.format != "" {
		cfg.ReporterConfig.Format = flags.format
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	runLogger, err := logger.NewForRun(cfg.LogConfig, logger.NewRunID(), cmd.ErrOrStderr())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not initialize logger")
	}

	rep, err := reporter.NewReporter(cfg.ReporterConfig)
	if err != nil {
		_ = runLogger.Close()
		return nil, err
	}

	runLogger.GetZerolog().Debug().
		Str("command", cmd.Name()).
		Str("expected_host", cfg.ParserConfig.ExpectedHost).
		Str("api_version", cfg.ParserConfig.APIVersion).
		Msg("Configuration loaded")

	return &app{
		cfg:      cfg,
		log:      runLogger,
		parser:   recap.NewParser(cfg.ParserConfig.ToOptions()),
		reporter: rep,
	}, nil
}
