package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvaillant/match-stats/internal/logging"
	"mvaillant/match-stats/internal/parsererror"
)

const sampleData = "1/1/2014,Everton,Manchester City,3,1\n1/1/2014,Everton,Stoke City,2,0\n"

func TestLoad(t *testing.T) {
	l := New(strings.NewReader(sampleData), &logging.MockLogger{})

	matches, err := l.Load()
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "Everton", matches[0].HomeTeam)
	assert.Equal(t, "Manchester City", matches[0].AwayTeam)
	assert.Equal(t, 3, matches[0].HomeScore)
	assert.Equal(t, 1, matches[0].AwayScore)

	assert.Equal(t, "Everton", matches[1].HomeTeam)
	assert.Equal(t, "Stoke City", matches[1].AwayTeam)
	assert.Equal(t, 2, matches[1].HomeScore)
	assert.Equal(t, 0, matches[1].AwayScore)
}

func TestLoadPreservesOrder(t *testing.T) {
	data := "1/1/2014,C,D,1,0\n2/1/2014,A,B,0,0\n3/1/2014,E,F,2,2\n"
	l := New(strings.NewReader(data), &logging.MockLogger{})

	matches, err := l.Load()
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "C", matches[0].HomeTeam)
	assert.Equal(t, "A", matches[1].HomeTeam)
	assert.Equal(t, "E", matches[2].HomeTeam)
}

func TestLoadEmptySource(t *testing.T) {
	l := New(strings.NewReader(""), &logging.MockLogger{})

	matches, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLoadFailsFastOnMalformedRow(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
	}{
		{"short row", "1/1/2014,Everton,Manchester City,3,1\n1/1/2014,Everton,Stoke City\n", 2},
		{"blank line", "\n1/1/2014,Everton,Stoke City,2,0\n", 1},
		{"bad date", "1/1/2014,A,B,1,0\n99/99/2014,C,D,1,0\n", 2},
		{"bad score", "1/1/2014,A,B,x,0\n", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New(strings.NewReader(tc.data), &logging.MockLogger{})

			matches, err := l.Load()
			require.Error(t, err)
			// Fail-fast: no partial result.
			assert.Nil(t, matches)

			var rowErr *parsererror.RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tc.wantLine, rowErr.Line)
		})
	}
}

func TestLoadSecondCallReturnsConsumed(t *testing.T) {
	l := New(strings.NewReader(sampleData), &logging.MockLogger{})

	_, err := l.Load()
	require.NoError(t, err)

	_, err = l.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceConsumed)
}

func TestParse(t *testing.T) {
	match, err := Parse("1/1/2014,Everton,Manchester City,3,1")
	require.NoError(t, err)
	assert.Equal(t, "Everton", match.HomeTeam)
}

func TestNewDefaultsLogger(t *testing.T) {
	l := New(strings.NewReader(sampleData), nil)
	matches, err := l.Load()
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
