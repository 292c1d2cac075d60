// Package team handles the per-team match list command
package team

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mvaillant/match-stats/cmd/common"
	"mvaillant/match-stats/cmd/root"
	"mvaillant/match-stats/internal/analyzer"
	"mvaillant/match-stats/internal/dateutils"
	"mvaillant/match-stats/internal/models"
)

// Cmd represents the team command
var Cmd = &cobra.Command{
	Use:   "team <name>",
	Short: "List the matches a team played in",
	Long: `List every match the named team played in, home or away, in file order.
With --date, only matches played on that day are listed.`,
	Args: cobra.ExactArgs(1),
	Run:  teamFunc,
}

// matchDate is the optional --date filter value
var matchDate string

func init() {
	Cmd.Flags().StringVarP(&matchDate, "date", "d", "", "Only matches played on this day (D/M/YYYY)")
}

func teamFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Team command called")

	name := common.ResolveTeam(args[0], root.SharedFlags.Aliases, root.Log)

	a, err := common.NewAnalyzer(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading match data: %v", err)
	}

	matches := a.TeamMatches(name)
	suffix := ""
	if matchDate != "" {
		day, err := dateutils.ParseMatchDate(matchDate)
		if err != nil {
			root.Log.Fatalf("Invalid --date value: %v", err)
		}
		matches = matchesOnDay(a, name, day)
		suffix = " on " + dateutils.ToMatchFormat(day)
	}

	if len(matches) == 0 {
		fmt.Printf("No matches found for %s%s\n", name, suffix)
		return
	}

	for _, match := range matches {
		fmt.Printf("%s  %s %d-%d %s\n",
			dateutils.ToISODate(match.Date),
			match.HomeTeam, match.HomeScore, match.AwayScore, match.AwayTeam)
	}
	fmt.Printf("%d matches for %s%s\n", len(matches), name, suffix)
}

// matchesOnDay narrows the day's fixtures to the ones the named team played in.
func matchesOnDay(a *analyzer.Analyzer, name string, day time.Time) []models.Match {
	var result []models.Match
	for _, match := range a.MatchesOn(day) {
		if match.HasTeam(name) {
			result = append(result, match)
		}
	}
	return result
}
