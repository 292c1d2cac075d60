// Package common provides the shared CSV output plumbing used by the export
// and report commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"mvaillant/match-stats/internal/dateutils"
	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/models"
)

// Delimiter is the output CSV delimiter. Configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// MatchCSVRow is the normalized output row for one match. Dates are ISO and
// the computed outcome is included, so downstream tooling never re-derives it.
type MatchCSVRow struct {
	Date      string `csv:"Date"`
	HomeTeam  string `csv:"HomeTeam"`
	AwayTeam  string `csv:"AwayTeam"`
	HomeScore int    `csv:"HomeScore"`
	AwayScore int    `csv:"AwayScore"`
	Outcome   string `csv:"Outcome"`
	Winner    string `csv:"Winner"`
}

// NewMatchCSVRow converts a Match into its normalized output row.
func NewMatchCSVRow(match models.Match) MatchCSVRow {
	winner, _ := match.Winner()
	return MatchCSVRow{
		Date:      dateutils.ToISODate(match.Date),
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
		Outcome:   match.Outcome().String(),
		Winner:    winner,
	}
}

// WriteMatchesToCSV writes matches to a CSV file in the normalized format.
// All output paths go through this function so the format stays consistent.
func WriteMatchesToCSV(matches []models.Match, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if matches == nil {
		return fmt.Errorf("cannot write nil matches to CSV")
	}

	logger.Info("Writing matches to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(matches)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		logger.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]MatchCSVRow, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, NewMatchCSVRow(match))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal matches to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote matches to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(matches)})
	return nil
}
