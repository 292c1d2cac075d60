package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvaillant/match-stats/internal/logging"
)

const sampleAliases = `aliases:
  Man City: Manchester City
  Spurs: Tottenham Hotspur
`

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAliasStore(t *testing.T) {
	path := writeAliasFile(t, sampleAliases)

	store, err := LoadAliasStore(path, &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Manchester City", store.Resolve("Man City"))
	assert.Equal(t, "Tottenham Hotspur", store.Resolve("Spurs"))
}

func TestResolveUnknownNamePassesThrough(t *testing.T) {
	path := writeAliasFile(t, sampleAliases)

	store, err := LoadAliasStore(path, &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, "Everton", store.Resolve("Everton"))
}

func TestLoadAliasStoreMissingFile(t *testing.T) {
	// A missing alias file is not an error: resolution is the identity.
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	store, err := LoadAliasStore(missing, &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "Man City", store.Resolve("Man City"))
}

func TestLoadAliasStoreInvalidYAML(t *testing.T) {
	path := writeAliasFile(t, "aliases: [not a map")

	_, err := LoadAliasStore(path, &logging.MockLogger{})
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	store := NewAliasStore(&logging.MockLogger{})
	store.Add("Toffees", "Everton")

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Everton", store.Resolve("Toffees"))
}
