package gcode

import (
	"strconv"
	"strings"
	"unicode"
)

// scanned is the result of splitting a single source line.
type scanned struct {
	layout     Layout
	hasComment bool
	comment    string

	// command is the command text with surrounding whitespace removed.
	command string

	// opaque is set when the head is not a letter+number word, so the
	// command can only be kept as text.
	opaque bool
	head   Word
	words  Block

	// text is the free-form argument of a text head such as M117.
	text string
}

// Heads whose argument is free text rather than parameter words.
var textHeads = map[headKey]bool{
	{'M', 23}:  true,
	{'M', 28}:  true,
	{'M', 30}:  true,
	{'M', 32}:  true,
	{'M', 117}: true,
	{'M', 118}: true,

	// Prusa printer checks, e.g. `M862.3 P "MK3S"`.
	{'M', 862.1}: true,
	{'M', 862.2}: true,
	{'M', 862.3}: true,
	{'M', 862.4}: true,
	{'M', 862.5}: true,
	{'M', 862.6}: true,
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func scanLine(s string, n int) (*scanned, *ScanError) {
	var sc scanned

	code := s
	if i := strings.IndexByte(s, ';'); i != -1 {
		code = s[:i]
		sc.hasComment = true
		sc.comment = s[i+1:]
		if strings.HasPrefix(sc.comment, " ") {
			sc.comment = sc.comment[1:]
		} else {
			sc.layout.Tight = true
		}
	}

	rest := strings.TrimLeftFunc(code, unicode.IsSpace)
	sc.layout.Indent = code[:len(code)-len(rest)]
	sc.command = strings.TrimRightFunc(rest, unicode.IsSpace)
	sc.layout.Gap = rest[len(sc.command):]
	if sc.command == "" {
		return &sc, nil
	}

	head, tail, ok := scanHead(sc.command)
	if !ok {
		sc.opaque = true
		return &sc, nil
	}
	sc.head = head
	if textHeads[head.key()] {
		sc.text = strings.TrimLeftFunc(tail, unicode.IsSpace)
		return &sc, nil
	}

	words, err := scanWords(tail, n)
	if err != nil {
		return nil, err
	}
	sc.words = words
	return &sc, nil
}

// scanHead reads the letter+number word at the start of s. The head
// number is unsigned and has no exponent.
func scanHead(s string) (Word, string, bool) {
	if !isLetter(s[0]) {
		return Word{}, s, false
	}
	i := 1
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 1 {
		return Word{}, s, false
	}
	if i < len(s) && s[i] == '.' && i+1 < len(s) && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	arg, err := strconv.ParseFloat(s[1:i], 64)
	if err != nil {
		return Word{}, s, false
	}
	return Word{W: upper(s[0]), Arg: arg, Text: s[1:i]}, s[i:], true
}

// scanWords scans the fields after the head. s starts right after the
// head, so a first token not preceded by whitespace is glued to it.
func scanWords(s string, n int) (Block, *ScanError) {
	var b Block
	glued := s != "" && !unicode.IsSpace(rune(s[0]))
	for i, tok := range strings.Fields(s) {
		var err *ScanError
		b, err = scanToken(b, tok, glued && i == 0, n)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// scanToken appends the words of a single whitespace-delimited token.
// Tokens may hold several words in the compact form `X10Y5`. An exponent
// is only read when the literal is the whole token after its letter
// (`X1e3`); inside compact tokens `E` always starts a new field, so
// `X10E5` glued to other fields is X10 E5.
func scanToken(b Block, tok string, glued bool, n int) (Block, *ScanError) {
	pos := 0
	for pos < len(tok) {
		c := tok[pos]
		if !isLetter(c) {
			return nil, &ScanError{Line: n, Text: tok, Reason: "expected parameter letter"}
		}
		w := Word{W: upper(c)}
		pos++
		if pos == len(tok) {
			w.Bare = true
			b = append(b, w)
			break
		}
		if !isNumberStart(tok[pos]) {
			return nil, &ScanError{Line: n, Text: tok, Reason: "expected number after " + string(w.W)}
		}

		l := scanNumber(tok[pos:], false)
		if pos == 1 && !glued {
			if e := scanNumber(tok[pos:], true); pos+e == len(tok) {
				l = e
			}
		}
		lit := tok[pos : pos+l]
		pos += l
		if pos < len(tok) && !isLetter(tok[pos]) {
			return nil, &ScanError{Line: n, Text: tok, Reason: "invalid number"}
		}
		arg, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &ScanError{Line: n, Text: tok, Reason: "invalid number"}
		}
		w.Arg = arg
		w.Text = lit
		b = append(b, w)
	}
	return b, nil
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '.' || c == '+' || c == '-'
}

// scanNumber returns the length of the numeric literal at the start of s,
// including an exponent if exp is set.
func scanNumber(s string, exp bool) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if exp && i > 0 && i < len(s) && isDigit(s[i-1]) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}
