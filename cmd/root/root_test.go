package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvaillant/match-stats/internal/common"
	"mvaillant/match-stats/internal/config"
)

func TestApplyConfig(t *testing.T) {
	originalDelim := common.Delimiter
	originalFlags := SharedFlags
	defer func() {
		common.SetDelimiter(originalDelim)
		SharedFlags = originalFlags
	}()

	cfg := &config.Config{}
	cfg.CSV.Delimiter = ";"
	cfg.Data.AliasesFile = "teams.yaml"
	cfg.Data.Directory = "/data/seasons"

	SharedFlags = CommonFlags{Input: "matches.csv"}
	ApplyConfig(cfg)

	assert.Equal(t, ';', common.Delimiter)
	assert.Equal(t, "teams.yaml", SharedFlags.Aliases)
	assert.Equal(t, "/data/seasons/matches.csv", SharedFlags.Input)
}

func TestApplyConfigFlagsWin(t *testing.T) {
	originalDelim := common.Delimiter
	originalFlags := SharedFlags
	defer func() {
		common.SetDelimiter(originalDelim)
		SharedFlags = originalFlags
	}()

	cfg := &config.Config{}
	cfg.CSV.Delimiter = ","
	cfg.Data.AliasesFile = "teams.yaml"
	cfg.Data.Directory = "/data/seasons"

	// An explicit --aliases flag and an absolute --input path are left alone.
	SharedFlags = CommonFlags{Input: "/tmp/matches.csv", Aliases: "mine.yaml"}
	ApplyConfig(cfg)

	assert.Equal(t, "mine.yaml", SharedFlags.Aliases)
	assert.Equal(t, "/tmp/matches.csv", SharedFlags.Input)
}

func TestPersistentPreRunWiresConfig(t *testing.T) {
	t.Setenv("MATCHSTATS_CSV_DELIMITER", ";")
	t.Setenv("MATCHSTATS_DATA_ALIASES_FILE", "clubs.yaml")

	originalDelim := common.Delimiter
	originalFlags := SharedFlags
	defer func() {
		common.SetDelimiter(originalDelim)
		SharedFlags = originalFlags
	}()

	SharedFlags = CommonFlags{}
	require.NotNil(t, Cmd.PersistentPreRun)
	Cmd.PersistentPreRun(Cmd, nil)

	assert.Equal(t, ';', common.Delimiter)
	assert.Equal(t, "clubs.yaml", SharedFlags.Aliases)
}
