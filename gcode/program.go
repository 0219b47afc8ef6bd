package gcode

import (
	"io"
	"strings"
)

// Program is an ordered sequence of lines, in execution order.
//
// A Program is never modified after it is built; the editing methods all
// return a new Program.
type Program struct {
	lines []Line
}

// NewProgram returns a Program holding a copy of lines.
func NewProgram(lines []Line) *Program {
	return &Program{lines: cloneLines(lines)}
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	c := make([]Line, len(lines))
	for i, l := range lines {
		c[i] = cloneLine(l)
	}
	return c
}

// cloneLine returns a copy of l that shares no storage with it.
func cloneLine(l Line) Line {
	l.Command = cloneCommand(l.Command)
	return l
}

func (p *Program) Len() int { return len(p.lines) }

// Line returns the line at index i (0-based).
func (p *Program) Line(i int) Line { return cloneLine(p.lines[i]) }

// Lines returns a copy of all lines.
func (p *Program) Lines() []Line { return cloneLines(p.lines) }

// Commands returns the commands of all non-blank lines, in order.
func (p *Program) Commands() []Command {
	var res []Command
	for _, l := range p.lines {
		if l.Command != nil {
			res = append(res, cloneCommand(l.Command))
		}
	}
	return res
}

func (p *Program) Replace(i int, l Line) *Program {
	c := cloneLines(p.lines)
	c[i] = cloneLine(l)
	return &Program{lines: c}
}

// Insert returns a Program with lines inserted before index i.
func (p *Program) Insert(i int, lines ...Line) *Program {
	c := make([]Line, 0, len(p.lines)+len(lines))
	c = append(c, p.lines[:i]...)
	for _, l := range lines {
		c = append(c, cloneLine(l))
	}
	c = append(c, p.lines[i:]...)
	return &Program{lines: c}
}

func (p *Program) Delete(i int) *Program {
	c := make([]Line, 0, len(p.lines)-1)
	c = append(c, p.lines[:i]...)
	c = append(c, p.lines[i+1:]...)
	return &Program{lines: c}
}

// Map returns a Program built from fn applied to every line.
func (p *Program) Map(fn func(i int, l Line) Line) *Program {
	c := make([]Line, len(p.lines))
	for i, l := range p.lines {
		c[i] = cloneLine(fn(i, cloneLine(l)))
	}
	return &Program{lines: c}
}

// Reader returns a Reader over the lines of p.
func (p *Program) Reader() *LinesReader {
	return &LinesReader{Lines: p.Lines()}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, l := range p.lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Program) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, NewBuffer(p.Reader()))
}

func (p *Program) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Program) UnmarshalText(data []byte) error {
	res, err := Parse(string(data))
	if err != nil {
		return err
	}
	p.lines = res.lines
	return nil
}
