package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	err := &FormatError{Row: "1/1/2014,Everton", Expected: 5, Actual: 2}

	assert.Contains(t, err.Error(), "expected 5 comma-separated fields")
	assert.Contains(t, err.Error(), "got 2")
	assert.Contains(t, err.Error(), "1/1/2014,Everton")
}

func TestDateParseError(t *testing.T) {
	cause := errors.New("unable to parse date: junk")
	err := &DateParseError{Value: "junk", Err: cause}

	assert.Contains(t, err.Error(), `"junk"`)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestScoreParseError(t *testing.T) {
	err := &ScoreParseError{Field: "homeScore", Value: "three"}

	assert.Contains(t, err.Error(), "homeScore")
	assert.Contains(t, err.Error(), `"three"`)
}

func TestRowError(t *testing.T) {
	inner := &FormatError{Row: "", Expected: 5, Actual: 1}
	err := &RowError{Line: 3, Err: inner}

	assert.Contains(t, err.Error(), "line 3")

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 1, formatErr.Actual)
}

func TestRowErrorThroughWrapping(t *testing.T) {
	inner := &DateParseError{Value: "x", Err: errors.New("bad")}
	wrapped := fmt.Errorf("loading file: %w", &RowError{Line: 7, Err: inner})

	var rowErr *RowError
	require.True(t, errors.As(wrapped, &rowErr))
	assert.Equal(t, 7, rowErr.Line)

	var dateErr *DateParseError
	assert.True(t, errors.As(wrapped, &dateErr))
}
