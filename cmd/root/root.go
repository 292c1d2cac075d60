// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mvaillant/match-stats/internal/common"
	"mvaillant/match-stats/internal/config"
	"mvaillant/match-stats/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Aliases string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "match-stats",
		Short: "A CLI tool to load football match results and answer aggregate queries.",
		Long: `match-stats reads a comma-separated file of football match results
and answers queries over them: match counts, per-team match lists, win
tallies, standings tables and season reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to match-stats!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			ApplyConfig(config.GetGlobalConfig())
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// IncludeTies is the wins command flag for counting draws as non-losses
	IncludeTies bool
)

// ApplyConfig applies the file/env configuration to the shared command state:
// the CSV delimiter, the alias-file default, and the data directory base for
// relative input paths. Flags given on the command line win over the config.
func ApplyConfig(cfg *config.Config) {
	// CSV_DELIMITER keeps overriding the config for backward compatibility
	if delim := config.GetEnv("CSV_DELIMITER", cfg.CSV.Delimiter); delim != "" {
		Log.WithField(logging.FieldDelimiter, delim).Debug("Setting CSV delimiter")
		common.SetDelimiter([]rune(delim)[0])
	}

	if SharedFlags.Aliases == "" {
		SharedFlags.Aliases = cfg.Data.AliasesFile
	}

	if SharedFlags.Input != "" && !filepath.IsAbs(SharedFlags.Input) && cfg.Data.Directory != "" {
		SharedFlags.Input = filepath.Join(cfg.Data.Directory, SharedFlags.Input)
	}
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input match data file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Aliases, "aliases", "a", "", "Team alias YAML file")
}
