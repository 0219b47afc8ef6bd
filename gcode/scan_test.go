package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLine(t *testing.T) {
	sc, err := scanLine("G1 X10 y-2.5 F1.2e3 ; move", 1)
	require.Nil(t, err)
	assert.Equal(t, "G1 X10 y-2.5 F1.2e3", sc.command)
	assert.Equal(t, Word{W: 'G', Arg: 1, Text: "1"}, sc.head)
	assert.Equal(t, Block{
		{W: 'X', Arg: 10, Text: "10"},
		{W: 'Y', Arg: -2.5, Text: "-2.5"},
		{W: 'F', Arg: 1200, Text: "1.2e3"},
	}, sc.words)
	assert.True(t, sc.hasComment)
	assert.Equal(t, "move", sc.comment)
	assert.Equal(t, Layout{Gap: " "}, sc.layout)
}

func TestScanLine_Compact(t *testing.T) {
	sc, err := scanLine("G01X1.5Y-2E.25", 3)
	require.Nil(t, err)
	assert.Equal(t, 1.0, sc.head.Arg)
	assert.Equal(t, "X1.5 Y-2 E.25", sc.words.String())
}

func TestScanLine_Layout(t *testing.T) {
	sc, err := scanLine("\t  ;tight", 1)
	require.Nil(t, err)
	assert.Equal(t, "", sc.command)
	assert.Equal(t, Layout{Indent: "\t  ", Tight: true}, sc.layout)
	assert.Equal(t, "tight", sc.comment)

	sc, err = scanLine("   ", 1)
	require.Nil(t, err)
	assert.False(t, sc.hasComment)
	assert.Equal(t, "", sc.command)
	assert.Equal(t, "   ", sc.layout.Indent)

	sc, err = scanLine(";  two spaces", 1)
	require.Nil(t, err)
	assert.Equal(t, " two spaces", sc.comment)
}

func TestScanLine_Opaque(t *testing.T) {
	for _, s := range []string{"MCustomCommand", "SET_FAN_SPEED FAN=part SPEED=0.5", "%", "$H", "G"} {
		sc, err := scanLine(s, 1)
		require.Nil(t, err, s)
		assert.True(t, sc.opaque, s)
		assert.Equal(t, s, sc.command)
	}
}

func TestScanLine_TextHead(t *testing.T) {
	sc, err := scanLine("M117 Hello, World! ; status", 1)
	require.Nil(t, err)
	assert.Equal(t, "Hello, World!", sc.text)
	assert.Nil(t, sc.words)

	sc, err = scanLine(`M862.3 P "MK3S" ; printer model check`, 1)
	require.Nil(t, err)
	assert.Equal(t, `P "MK3S"`, sc.text)
	assert.Equal(t, `M862.3 P "MK3S"`, sc.command)
}

func TestScanLine_BareWords(t *testing.T) {
	sc, err := scanLine("G28 X Y", 1)
	require.Nil(t, err)
	assert.Equal(t, Block{{W: 'X', Bare: true}, {W: 'Y', Bare: true}}, sc.words)
}

func TestScanLine_Errors(t *testing.T) {
	tests := []struct {
		line string
		text string
	}{
		{"G1 XFOO", "XFOO"},
		{"G1 X1.2.3", "X1.2.3"},
		{"G1 X-", "X-"},
		{"G1 X.", "X."},
		{"G1 X1 (move)", "(move)"},
		{"M999 S1,5", "S1,5"},
	}
	for _, tt := range tests {
		_, err := scanLine(tt.line, 7)
		require.NotNil(t, err, tt.line)
		assert.Equal(t, 7, err.Line, tt.line)
		assert.Equal(t, tt.text, err.Text, tt.line)
		assert.NotEmpty(t, err.Reason, tt.line)
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		s   string
		exp bool
		n   int
	}{
		{"10", true, 2},
		{"-1.5", true, 4},
		{"+.5", true, 3},
		{"1e3", true, 3},
		{"1e3", false, 1},
		{"1E-3Y", true, 4},
		{"1.5E", true, 3},
		{"2EX", true, 1},
		{".e5", true, 1},
		{"1.2.3", true, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.n, scanNumber(tt.s, tt.exp), tt.s)
	}
}

func TestScanLine_Exponent(t *testing.T) {
	tests := []struct {
		line  string
		words string
	}{
		{"G1X10E5", "X10 E5"},
		{"G1X10E0.5", "X10 E0.5"},
		{"G1X10E.5", "X10 E.5"},
		{"G1 X10 E5", "X10 E5"},
		{"G1 X1e3Y2", "X1 E3 Y2"},
		{"G1 X1e3 Y2", "X1e3 Y2"},
		{"G1 F1.2E-3", "F1.2E-3"},
	}
	for _, tt := range tests {
		sc, err := scanLine(tt.line, 1)
		require.Nil(t, err, tt.line)
		assert.Equal(t, tt.words, sc.words.String(), tt.line)
	}

	sc, err := scanLine("G1 X1e3", 1)
	require.Nil(t, err)
	assert.Equal(t, 1000.0, sc.words[0].Arg)
}
