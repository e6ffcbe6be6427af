package urlhandler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
)

// Custom errors for file operations
var (
	ErrFileNotFound = fmt.Errorf("input file %w", errorwrapper.ErrNotFound)
	ErrFileEmpty    = errors.New("input contains no URLs")
	ErrReadingFile  = errors.New("error reading input")
)

const maxLineSize = 1 << 20

// ReadTargetsFromFile reads one URL per line from filePath.
func ReadTargetsFromFile(filePath string, logger zerolog.Logger) ([]Target, error) {
	fileLogger := logger.With().Str("filePath", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadingFile, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, filePath, err)
	}
	defer file.Close()

	return ReadTargets(file, fileLogger)
}

// ReadTargets reads one URL per line. Blank lines and lines starting with '#'
// are skipped. URLs are kept as written so reports echo the exact input.
func ReadTargets(r io.Reader, logger zerolog.Logger) ([]Target, error) {
	var targets []Target
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	skipped := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			skipped++
			continue
		}
		targets = append(targets, Target{URL: line, Line: lineNumber})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrReadingFile, lineNumber+1, err)
	}

	logger.Debug().
		Int("totalLinesRead", lineNumber).
		Int("targetCount", len(targets)).
		Int("skippedCount", skipped).
		Msg("Finished reading targets")

	if len(targets) == 0 {
		return nil, ErrFileEmpty
	}
	return targets, nil
}
