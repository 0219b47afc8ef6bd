package gcode

import (
	"bufio"
	"io"
	"strings"
)

// Reader yields program lines one at a time.
type Reader interface {
	Read() (Line, error)
}

// Parser reads lines from a stream, parsing each as it is read.
type Parser struct {
	br *bufio.Reader
	n  int
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// Read returns the next line, io.EOF at the end of input, or a
// *ParseError.
func (p *Parser) Read() (Line, error) {
	s, err := p.br.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return Line{}, err
	}
	p.n++

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	l, serr := parseLine(s, p.n)
	if serr != nil {
		return Line{}, wrapScanError(serr)
	}
	return l, nil
}

type LinesReader struct {
	Lines []Line
	n     int
}

func (r *LinesReader) Read() (Line, error) {
	if r.n == len(r.Lines) {
		return Line{}, io.EOF
	}

	r.n++
	return r.Lines[r.n-1], nil
}

// ReadAll collects every line from r into a Program.
func ReadAll(r Reader) (*Program, error) {
	var lines []Line
	for {
		l, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return &Program{lines: lines}, nil
}
