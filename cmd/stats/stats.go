// Package stats handles the season summary command
package stats

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mvaillant/match-stats/cmd/common"
	"mvaillant/match-stats/cmd/root"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over a match data file",
	Long:  `Show the match count, goal totals and the standings table for a match data file.`,
	Run:   statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Stats command called")

	a, err := common.NewAnalyzer(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading match data: %v", err)
	}

	fmt.Printf("Matches: %d\n", a.NumberOfMatches())
	fmt.Printf("Teams: %d\n", len(a.Teams()))
	fmt.Printf("Goals: %d (%s per match)\n", a.TotalGoals(), a.AverageGoalsPerMatch())
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM\tP\tW\tD\tL\tGF\tGA\tGD\tPTS")
	for _, entry := range a.Table() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			entry.Team, entry.Played, entry.Wins, entry.Draws, entry.Losses,
			entry.GoalsFor, entry.GoalsAgainst, entry.GoalDiff, entry.Points)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Error writing standings table: %v", err)
	}
}
