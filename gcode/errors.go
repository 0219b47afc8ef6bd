package gcode

import (
	"fmt"
)

// ScanError is returned when a line cannot be split into a head and
// parameter words.
type ScanError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the offending token.
	Text string

	Reason string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseError is the only error returned by Parse. It wraps the first
// ScanError encountered.
type ParseError struct {
	Line int

	// Lines is the number of lines processed successfully before the
	// failure.
	Lines int

	Err *ScanError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse gcode: %d lines ok, failed at %s", e.Lines, e.Err.Error())
}

func (e *ParseError) Unwrap() error { return e.Err }

func wrapScanError(err *ScanError) *ParseError {
	return &ParseError{Line: err.Line, Lines: err.Line - 1, Err: err}
}
