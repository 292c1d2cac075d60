// Package parsererror defines the typed errors surfaced while parsing match data.
package parsererror

import "fmt"

// FormatError reports a row that does not contain the expected number of
// comma-separated fields.
type FormatError struct {
	Row      string
	Expected int
	Actual   int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed row %q: expected %d comma-separated fields, got %d",
		e.Row, e.Expected, e.Actual)
}

// DateParseError reports a date field that does not match the expected
// day/month/year pattern.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ScoreParseError reports a score field that is not a valid non-negative
// decimal integer.
type ScoreParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ScoreParseError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: not a non-negative integer", e.Field, e.Value)
}

func (e *ScoreParseError) Unwrap() error {
	return e.Err
}

// RowError wraps a parse failure with the 1-based line number it occurred on.
// The loader returns it so callers can point at the offending line.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
