package gcode

import "strings"

// Kind is the shape of a Line.
type Kind int

const (
	Blank Kind = iota
	CommentOnly
	CommandOnly
	CommandComment
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case CommentOnly:
		return "comment"
	case CommandOnly:
		return "command"
	case CommandComment:
		return "command+comment"
	}
	return "unknown"
}

// Layout holds the whitespace of a source line that is not part of the
// command or the comment text.
type Layout struct {
	// Indent is the whitespace before the command or comment.
	Indent string

	// Gap is the whitespace after the command, up to the comment marker
	// or the end of the line.
	Gap string

	// Tight is set when the comment text directly follows ';' without a
	// space.
	Tight bool
}

// Line is one physical line of a program.
type Line struct {
	// Command is nil for blank and comment-only lines.
	Command Command

	Comment    string
	HasComment bool

	Layout Layout
}

// NewLine returns a line with canonical spacing. An empty comment means
// no comment.
func NewLine(cmd Command, comment string) Line {
	l := Line{Command: cmd, Comment: comment, HasComment: comment != ""}
	if cmd != nil && l.HasComment {
		l.Layout.Gap = " "
	}
	return l
}

func assemble(sc *scanned, cmd Command) Line {
	return Line{
		Command:    cmd,
		Comment:    sc.comment,
		HasComment: sc.hasComment,
		Layout:     sc.layout,
	}
}

func (l Line) Kind() Kind {
	switch {
	case l.Command == nil && !l.HasComment:
		return Blank
	case l.Command == nil:
		return CommentOnly
	case !l.HasComment:
		return CommandOnly
	}
	return CommandComment
}

// WithCommand returns a copy of l with its command replaced.
func (l Line) WithCommand(cmd Command) Line {
	l.Command = cmd
	return l
}

// WithComment returns a copy of l with its comment replaced.
func (l Line) WithComment(comment string) Line {
	l.Comment = comment
	l.HasComment = true
	return l
}

// String re-emits the line without a trailing newline.
func (l Line) String() string {
	var sb strings.Builder
	sb.WriteString(l.Layout.Indent)
	if l.Command != nil {
		sb.WriteString(l.Command.String())
	}
	sb.WriteString(l.Layout.Gap)
	if l.HasComment {
		sb.WriteByte(';')
		if !l.Layout.Tight {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.Comment)
	}
	return sb.String()
}
