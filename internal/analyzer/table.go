package analyzer

import (
	"sort"

	"mvaillant/match-stats/internal/models"
)

// TableEntry holds the standings info for one team.
type TableEntry struct {
	Team         string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
}

// Table computes the standings over all loaded matches: three points for a
// win, one for a draw. Entries are sorted by points, then goal difference,
// then goals scored, then name.
func (a *Analyzer) Table() []TableEntry {
	entries := make(map[string]*TableEntry)

	record := func(team string, scored, conceded int, outcome models.Outcome, won models.Outcome) {
		entry, ok := entries[team]
		if !ok {
			entry = &TableEntry{Team: team}
			entries[team] = entry
		}
		entry.Played++
		entry.GoalsFor += scored
		entry.GoalsAgainst += conceded
		switch outcome {
		case won:
			entry.Wins++
			entry.Points += PointsPerWin
		case models.OutcomeDraw:
			entry.Draws++
			entry.Points += PointsPerDraw
		default:
			entry.Losses++
		}
		entry.GoalDiff = entry.GoalsFor - entry.GoalsAgainst
	}

	for _, match := range a.matches {
		outcome := match.Outcome()
		record(match.HomeTeam, match.HomeScore, match.AwayScore, outcome, models.OutcomeHome)
		record(match.AwayTeam, match.AwayScore, match.HomeScore, outcome, models.OutcomeAway)
	}

	table := make([]TableEntry, 0, len(entries))
	for _, entry := range entries {
		table = append(table, *entry)
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].GoalDiff != table[j].GoalDiff {
			return table[i].GoalDiff > table[j].GoalDiff
		}
		if table[i].GoalsFor != table[j].GoalsFor {
			return table[i].GoalsFor > table[j].GoalsFor
		}
		return table[i].Team < table[j].Team
	})
	return table
}
