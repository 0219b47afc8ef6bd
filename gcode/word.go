package gcode

import (
	"strconv"
)

// Word is a single letter/value pair, e.g. "G1" or "X10.5".
type Word struct {
	W   byte
	Arg float64

	// Text is the literal as written in the source. When empty, Arg is
	// formatted instead.
	Text string

	// Bare is set when the letter appeared without a value (`G28 X`).
	Bare bool
}

// IsCommand reports whether w starts a command of its own. T is left out
// since it is also the tool parameter of M104/M109.
func (w Word) IsCommand() bool {
	return w.W == 'G' || w.W == 'M'
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (w Word) String() string {
	if w.Bare {
		return string(w.W)
	}
	if w.Text != "" {
		return string(w.W) + w.Text
	}
	return string(w.W) + formatFloat(w.Arg)
}

// Param is an optional numeric parameter. The zero value is unset.
type Param struct {
	Set   bool
	Value float64
}

// P returns a Param set to v.
func P(v float64) Param { return Param{Set: true, Value: v} }

func (p Param) Get() (float64, bool) { return p.Value, p.Set }

// IntParam is an optional integer parameter, such as a fan or tool index.
type IntParam struct {
	Set   bool
	Value int
}

// I returns an IntParam set to v.
func I(v int) IntParam { return IntParam{Set: true, Value: v} }

func (p IntParam) Get() (int, bool) { return p.Value, p.Set }
