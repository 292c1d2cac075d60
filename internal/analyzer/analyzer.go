// Package analyzer answers aggregate queries over a fixed in-memory list of
// matches.
package analyzer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"mvaillant/match-stats/internal/dateutils"
	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/models"
)

// Points awarded per result in the standings table.
const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Analyzer holds an ordered list of matches and derives views over it. The
// list is owned by the analyzer for its lifetime and is never mutated or
// reordered; queries return fresh slices.
type Analyzer struct {
	matches []models.Match
	logger  logging.Logger
}

// New creates an Analyzer over an already-materialized list of matches.
// If logger is nil, a default logger is used.
func New(matches []models.Match, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Analyzer{
		matches: matches,
		logger:  logger,
	}
}

// NumberOfMatches returns the count of stored matches.
func (a *Analyzer) NumberOfMatches() int {
	return len(a.matches)
}

// TeamMatches returns every match the named team played in, home or away,
// preserving original order. Team names compare exactly and case-sensitively.
// An unknown team yields an empty result, not an error.
func (a *Analyzer) TeamMatches(teamName string) []models.Match {
	var result []models.Match
	for _, match := range a.matches {
		if match.HasTeam(teamName) {
			result = append(result, match)
		}
	}
	a.logger.Debug("Filtered matches by team",
		logging.Field{Key: logging.FieldTeam, Value: teamName},
		logging.Field{Key: logging.FieldCount, Value: len(result)})
	return result
}

// MatchesWon returns the matches the named team won. With includeTies set,
// draws the team played in count as well: the query then means "did not
// lose" rather than strictly "won". That loosened semantic is deliberate and
// relied upon by callers.
func (a *Analyzer) MatchesWon(teamName string, includeTies bool) []models.Match {
	var wins []models.Match
	for _, match := range a.TeamMatches(teamName) {
		winner, ok := match.Winner()
		if ok && winner == teamName {
			wins = append(wins, match)
			continue
		}
		if !ok && includeTies {
			wins = append(wins, match)
		}
	}
	return wins
}

// Teams returns the distinct team names appearing in any match, sorted
// alphabetically.
func (a *Analyzer) Teams() []string {
	seen := make(map[string]bool)
	var teams []string
	for _, match := range a.matches {
		for _, name := range []string{match.HomeTeam, match.AwayTeam} {
			if !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}
	sort.Strings(teams)
	return teams
}

// MatchesOn returns the matches played on the given calendar day, in
// original order.
func (a *Analyzer) MatchesOn(day time.Time) []models.Match {
	var result []models.Match
	for _, match := range a.matches {
		if dateutils.SameDay(match.Date, day) {
			result = append(result, match)
		}
	}
	return result
}

// TotalGoals returns the combined number of goals across all matches.
func (a *Analyzer) TotalGoals() int {
	total := 0
	for _, match := range a.matches {
		total += match.TotalGoals()
	}
	return total
}

// AverageGoalsPerMatch returns the mean combined score per match, rounded to
// two decimal places. Zero when no matches are loaded.
func (a *Analyzer) AverageGoalsPerMatch() decimal.Decimal {
	if len(a.matches) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(a.TotalGoals())).
		Div(decimal.NewFromInt(int64(len(a.matches)))).
		Round(2)
}
