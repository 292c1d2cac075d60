// Package common provides the shared load-and-analyze plumbing used by the
// query commands.
package common

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"mvaillant/match-stats/internal/analyzer"
	"mvaillant/match-stats/internal/loader"
	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/models"
	"mvaillant/match-stats/internal/store"
)

// LoadMatches opens the input file, loads all matches from it and closes the
// file before returning. The loader itself only borrows the handle; this is
// the scoped acquisition the loader's contract requires.
func LoadMatches(inputFile string, log *logrus.Logger) ([]models.Match, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("no input file given (use --input)")
	}

	file, err := os.Open(inputFile) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close input file")
		}
	}()

	adapter := logging.NewLogrusAdapterFromLogger(log)
	matches, err := loader.New(file, adapter).Load()
	if err != nil {
		return nil, fmt.Errorf("error loading matches from %s: %w", inputFile, err)
	}
	return matches, nil
}

// NewAnalyzer loads the input file and wraps the result in an Analyzer.
func NewAnalyzer(inputFile string, log *logrus.Logger) (*analyzer.Analyzer, error) {
	matches, err := LoadMatches(inputFile, log)
	if err != nil {
		return nil, err
	}
	return analyzer.New(matches, logging.NewLogrusAdapterFromLogger(log)), nil
}

// ResolveTeam maps a user-supplied team name through the optional alias file.
// With no alias file configured the name passes through unchanged.
func ResolveTeam(name, aliasFile string, log *logrus.Logger) string {
	aliases, err := store.LoadAliasStore(aliasFile, logging.NewLogrusAdapterFromLogger(log))
	if err != nil {
		log.WithError(err).Warn("Failed to load alias file, using name as given")
		return name
	}
	return aliases.Resolve(name)
}
