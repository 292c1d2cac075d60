// Package report handles the season report command
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mvaillant/match-stats/cmd/common"
	"mvaillant/match-stats/cmd/root"
	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/report"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a JSON season report",
	Long: `Generate a JSON season report with a report ID, standings table and
headline aggregates. Written to --output, or stdout when none is given.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Report command called")

	a, err := common.NewAnalyzer(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading match data: %v", err)
	}

	generator := report.NewGenerator(logging.NewLogrusAdapterFromLogger(root.Log))
	data, err := generator.Render(generator.Build(a))
	if err != nil {
		root.Log.Fatalf("Error rendering season report: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		root.Log.Fatalf("Error writing season report: %v", err)
	}
	root.Log.WithField("output_file", root.SharedFlags.Output).Info("Season report written")
}
