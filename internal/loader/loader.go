// Package loader turns a line source of raw match rows into Match records.
//
// The loader borrows its reader: the caller opens the source, hands it in, and
// closes it after Load returns. Each Loader consumes its source exactly once;
// a second Load returns ErrSourceConsumed rather than silently yielding an
// empty result.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/models"
	"mvaillant/match-stats/internal/parsererror"
)

// ErrSourceConsumed is returned when Load is called on a loader whose line
// source has already been read.
var ErrSourceConsumed = errors.New("match data source already consumed")

// Loader reads match rows from a line source. Construction only captures the
// source; no I/O happens until Load is called.
type Loader struct {
	source   io.Reader
	logger   logging.Logger
	consumed bool
}

// New creates a Loader over the given line source. If logger is nil, a
// default logger is used.
func New(source io.Reader, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{
		source: source,
		logger: logger,
	}
}

// Load reads all remaining lines from the source and parses each into a
// Match, preserving input order. The first malformed row aborts the whole
// call with an error naming the offending line; no partial result is
// returned. These are small curated files, so strict failure beats silent
// recovery.
func (l *Loader) Load() ([]models.Match, error) {
	if l.consumed {
		return nil, ErrSourceConsumed
	}
	l.consumed = true

	l.logger.Info("Loading match data")

	var matches []models.Match
	scanner := bufio.NewScanner(l.source)
	line := 0
	for scanner.Scan() {
		line++
		match, err := Parse(scanner.Text())
		if err != nil {
			l.logger.WithError(err).Error("Failed to parse match row",
				logging.Field{Key: logging.FieldLine, Value: line})
			return nil, &parsererror.RowError{Line: line, Err: err}
		}
		matches = append(matches, match)
	}
	if err := scanner.Err(); err != nil {
		l.logger.WithError(err).Error("Failed to read match data source")
		return nil, fmt.Errorf("error reading match data: %w", err)
	}

	l.logger.Info("Successfully loaded match data",
		logging.Field{Key: logging.FieldCount, Value: len(matches)})
	return matches, nil
}

// Parse converts one raw line of text into a Match. It is a pure function
// over the row; blank and malformed lines fail with a data-format error.
func Parse(row string) (models.Match, error) {
	return models.ParseRow(row)
}
