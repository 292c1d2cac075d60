package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMatches(t *testing.T) {
	path := writeMatchFile(t, "1/1/2014,Everton,Manchester City,3,1\n1/1/2014,Everton,Stoke City,2,0\n")

	matches, err := LoadMatches(path, logrus.New())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Everton", matches[0].HomeTeam)
}

func TestLoadMatchesNoInput(t *testing.T) {
	_, err := LoadMatches("", logrus.New())
	assert.Error(t, err)
}

func TestLoadMatchesMissingFile(t *testing.T) {
	_, err := LoadMatches(filepath.Join(t.TempDir(), "nope.csv"), logrus.New())
	assert.Error(t, err)
}

func TestLoadMatchesMalformedFile(t *testing.T) {
	path := writeMatchFile(t, "1/1/2014,Everton,Manchester City,3,1\nbroken row\n")

	_, err := LoadMatches(path, logrus.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestNewAnalyzer(t *testing.T) {
	path := writeMatchFile(t, "1/1/2014,Everton,Manchester City,3,1\n")

	a, err := NewAnalyzer(path, logrus.New())
	require.NoError(t, err)
	assert.Equal(t, 1, a.NumberOfMatches())
}

func TestResolveTeamWithoutAliasFile(t *testing.T) {
	assert.Equal(t, "Everton", ResolveTeam("Everton", "", logrus.New()))
}

func TestResolveTeamWithAliasFile(t *testing.T) {
	aliasFile := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(aliasFile, []byte("aliases:\n  Toffees: Everton\n"), 0600))

	assert.Equal(t, "Everton", ResolveTeam("Toffees", aliasFile, logrus.New()))
}
