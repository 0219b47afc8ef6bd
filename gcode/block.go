package gcode

import "strings"

// Block is an ordered run of words from a single line.
type Block []Word

// Word returns the first word with the letter w.
func (b Block) Word(w byte) (Word, bool) {
	for _, g := range b {
		if g.W == w {
			return g, true
		}
	}
	return Word{}, false
}

// HasCommand reports whether any word in b is itself a command word.
func (b Block) HasCommand() bool {
	for _, g := range b {
		if g.IsCommand() {
			return true
		}
	}
	return false
}

// Repeated reports whether any letter occurs more than once.
func (b Block) Repeated() bool {
	var seen [256]bool
	for _, g := range b {
		if seen[g.W] {
			return true
		}
		seen[g.W] = true
	}
	return false
}

// Without returns the words of b whose letters are not in letters,
// preserving order.
func (b Block) Without(letters string) Block {
	var res Block
	for _, g := range b {
		if strings.IndexByte(letters, g.W) == -1 {
			res = append(res, g)
		}
	}
	return res
}

func (b Block) clone() Block {
	if len(b) == 0 {
		return nil
	}
	c := make(Block, len(b))
	copy(c, b)
	return c
}

func (b Block) String() string {
	parts := make([]string, len(b))
	for i, g := range b {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
