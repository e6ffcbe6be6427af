package urlhandler

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
)

// StdinSource selects standard input as the target source.
const StdinSource = "-"

// TargetManager loads recap URLs from a file or standard input
type TargetManager struct {
	logger zerolog.Logger
	stdin  io.Reader
}

// NewTargetManager creates a new TargetManager reading "-" from os.Stdin
func NewTargetManager(logger zerolog.Logger) *TargetManager {
	return NewTargetManagerWithStdin(logger, os.Stdin)
}

// NewTargetManagerWithStdin creates a TargetManager reading "-" from stdin
func NewTargetManagerWithStdin(logger zerolog.Logger, stdin io.Reader) *TargetManager {
	return &TargetManager{
		logger: logger.With().Str("component", "TargetManager").Logger(),
		stdin:  stdin,
	}
}

// LoadTargets loads targets from source, a file path or "-" for stdin
func (tm *TargetManager) LoadTargets(source string) ([]Target, error) {
	if source == "" {
		return nil, errorwrapper.NewError("no target source given")
	}

	var targets []Target
	var err error
	if source == StdinSource {
		targets, err = ReadTargets(tm.stdin, tm.logger)
	} else {
		targets, err = ReadTargetsFromFile(source, tm.logger)
	}
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load URLs from '"+source+"'")
	}

	tm.logger.Info().Int("count", len(targets)).Str("source", source).Msg("Loaded targets")
	return targets, nil
}

// GetTargetStrings extracts URL strings from Target objects
func (tm *TargetManager) GetTargetStrings(targets []Target) []string {
	urls := make([]string, len(targets))
	for i, t := range targets {
		urls[i] = t.URL
	}
	return urls
}
