// Package models defines the core data structures used throughout the application.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mvaillant/match-stats/internal/dateutils"
	"mvaillant/match-stats/internal/parsererror"
)

// MatchFieldCount is the number of comma-separated fields a match row carries.
const MatchFieldCount = 5

// Outcome is the result of a match from the fixture's point of view.
// A draw is its own value so callers cannot confuse "no winner" with a team
// that happens to have an empty or sentinel name.
type Outcome int

const (
	// OutcomeDraw indicates equal scores.
	OutcomeDraw Outcome = iota
	// OutcomeHome indicates the home team scored strictly more goals.
	OutcomeHome
	// OutcomeAway indicates the away team scored strictly more goals.
	OutcomeAway
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHome:
		return "home"
	case OutcomeAway:
		return "away"
	default:
		return "draw"
	}
}

// Match represents one played fixture. Values are immutable after
// construction; derived facts are computed on demand.
type Match struct {
	HomeTeam  string
	AwayTeam  string
	Date      time.Time
	HomeScore int
	AwayScore int
}

// NewMatch builds a Match from explicit field values. The date is day-first
// D/M/YYYY text and both scores must be non-negative decimal integers.
func NewMatch(date, homeTeam, awayTeam, homeScore, awayScore string) (Match, error) {
	parsedDate, err := dateutils.ParseMatchDate(date)
	if err != nil {
		return Match{}, &parsererror.DateParseError{Value: date, Err: err}
	}

	home, err := parseScore("homeScore", homeScore)
	if err != nil {
		return Match{}, err
	}
	away, err := parseScore("awayScore", awayScore)
	if err != nil {
		return Match{}, err
	}

	return Match{
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		Date:      parsedDate,
		HomeScore: home,
		AwayScore: away,
	}, nil
}

// ParseRow builds a Match from one raw text line in the form
// "date,homeTeam,awayTeam,homeScore,awayScore". The field count is validated
// before any positional access so a short row surfaces as a FormatError
// rather than an index panic.
func ParseRow(row string) (Match, error) {
	fields := strings.Split(row, ",")
	if len(fields) != MatchFieldCount {
		return Match{}, &parsererror.FormatError{
			Row:      row,
			Expected: MatchFieldCount,
			Actual:   len(fields),
		}
	}
	return NewMatch(fields[0], fields[1], fields[2], fields[3], fields[4])
}

// String renders the fixture for display and debugging. It is not a wire
// format and is never parsed back.
func (m Match) String() string {
	return fmt.Sprintf("%s | %s", m.HomeTeam, m.AwayTeam)
}

// Outcome determines the result of the match. Strict greater-than comparison
// only: equal scores are always a draw, regardless of venue.
func (m Match) Outcome() Outcome {
	switch {
	case m.HomeScore > m.AwayScore:
		return OutcomeHome
	case m.HomeScore < m.AwayScore:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// Winner returns the name of the winning team. The second return value is
// false when the match was drawn, in which case the name is empty.
func (m Match) Winner() (string, bool) {
	switch m.Outcome() {
	case OutcomeHome:
		return m.HomeTeam, true
	case OutcomeAway:
		return m.AwayTeam, true
	default:
		return "", false
	}
}

// HasTeam reports whether the named team played in this match, home or away.
// Comparison is exact and case-sensitive.
func (m Match) HasTeam(teamName string) bool {
	return m.HomeTeam == teamName || m.AwayTeam == teamName
}

// TotalGoals returns the combined score of both teams.
func (m Match) TotalGoals() int {
	return m.HomeScore + m.AwayScore
}

// parseScore parses a non-negative decimal integer score field.
func parseScore(field, value string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &parsererror.ScoreParseError{Field: field, Value: value, Err: err}
	}
	if score < 0 {
		return 0, &parsererror.ScoreParseError{Field: field, Value: value}
	}
	return score, nil
}
