// Package store provides functionality for loading application data files,
// currently the optional team-alias mapping.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mvaillant/match-stats/internal/logging"
)

// AliasStore resolves alternate team spellings to the canonical names used in
// match files ("Man City" -> "Manchester City"). Match queries compare names
// exactly, so resolution happens on the way in, before any query runs.
type AliasStore struct {
	aliases map[string]string
	logger  logging.Logger
}

// aliasFile is the on-disk YAML shape.
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// NewAliasStore creates an empty alias store.
func NewAliasStore(logger logging.Logger) *AliasStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &AliasStore{
		aliases: make(map[string]string),
		logger:  logger,
	}
}

// LoadAliasStore loads aliases from a YAML file. A missing file is not an
// error: the store is simply empty and Resolve becomes the identity.
func LoadAliasStore(filename string, logger logging.Logger) (*AliasStore, error) {
	store := NewAliasStore(logger)
	if filename == "" {
		filename = "aliases.yaml"
	}

	path, err := findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			store.logger.Debug("Alias file not found, using canonical names only",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return store, nil
		}
		return nil, fmt.Errorf("error resolving alias file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from user configuration
	if err != nil {
		return nil, fmt.Errorf("error reading alias file: %w", err)
	}

	var parsed aliasFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing alias file: %w", err)
	}
	if parsed.Aliases != nil {
		store.aliases = parsed.Aliases
	}

	store.logger.Info("Loaded team aliases",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(store.aliases)})
	return store, nil
}

// Resolve maps an alias to its canonical team name. Unknown names pass
// through unchanged.
func (s *AliasStore) Resolve(name string) string {
	if canonical, ok := s.aliases[name]; ok {
		return canonical
	}
	return name
}

// Add registers an alias for a canonical team name.
func (s *AliasStore) Add(alias, canonical string) {
	s.aliases[alias] = canonical
}

// Len returns the number of registered aliases.
func (s *AliasStore) Len() int {
	return len(s.aliases)
}

// findConfigFile looks for a data file in the standard locations: the path
// itself, ./config/, then $HOME/.config/match-stats/.
func findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "match-stats", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
