package gcode

import (
	"bytes"
	"io"
)

// Buffer re-emits the lines of a Reader as text, one line per "\n".
type Buffer struct {
	r   Reader
	buf bytes.Buffer
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer {
	return &Buffer{r: r}
}

func (b *Buffer) Read(p []byte) (n int, err error) {
	for b.err == nil && b.buf.Len() < len(p) {
		var l Line
		l, b.err = b.r.Read()
		if b.err != nil {
			break
		}
		b.buf.WriteString(l.String())
		b.buf.WriteByte('\n')
	}

	if b.buf.Len() > 0 {
		return b.buf.Read(p)
	}
	return 0, b.err
}
