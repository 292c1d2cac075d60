// Package export handles the normalized CSV export command
package export

import (
	"github.com/spf13/cobra"

	cmdcommon "mvaillant/match-stats/cmd/common"
	"mvaillant/match-stats/cmd/root"
	"mvaillant/match-stats/internal/common"
	"mvaillant/match-stats/internal/logging"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export match data as a normalized CSV file",
	Long: `Export the loaded matches as a headered CSV file with ISO dates and
the computed outcome of each match.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file given (use --output)")
	}

	matches, err := cmdcommon.LoadMatches(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading match data: %v", err)
	}

	adapter := logging.NewLogrusAdapterFromLogger(root.Log)
	if err := common.WriteMatchesToCSV(matches, root.SharedFlags.Output, adapter); err != nil {
		root.Log.Fatalf("Error exporting matches: %v", err)
	}
	root.Log.Info("Match export completed successfully!")
}
