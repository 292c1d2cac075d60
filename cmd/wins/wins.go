// Package wins handles the win tally command
package wins

import (
	"fmt"

	"github.com/spf13/cobra"

	"mvaillant/match-stats/cmd/common"
	"mvaillant/match-stats/cmd/root"
	"mvaillant/match-stats/internal/dateutils"
)

// Cmd represents the wins command
var Cmd = &cobra.Command{
	Use:   "wins <name>",
	Short: "List the matches a team won",
	Long: `List the matches the named team won. With --include-ties, draws the
team played in count as well, so the tally means "did not lose".`,
	Args: cobra.ExactArgs(1),
	Run:  winsFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.IncludeTies, "include-ties", "t", false, "Count draws the team played in")
}

func winsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Wins command called")

	name := common.ResolveTeam(args[0], root.SharedFlags.Aliases, root.Log)

	a, err := common.NewAnalyzer(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading match data: %v", err)
	}

	wins := a.MatchesWon(name, root.IncludeTies)
	for _, match := range wins {
		fmt.Printf("%s  %s %d-%d %s\n",
			dateutils.ToISODate(match.Date),
			match.HomeTeam, match.HomeScore, match.AwayScore, match.AwayTeam)
	}
	fmt.Printf("%d wins for %s\n", len(wins), name)
}
