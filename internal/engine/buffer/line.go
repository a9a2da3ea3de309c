package buffer

import (
	"strings"
	"unicode/utf8"
)

// LineView is a read-only copy of one line, terminator included.
type LineView struct {
	text  string
	chars int
}

func newLineView(s string) LineView {
	return LineView{text: s, chars: utf8.RuneCountInString(s)}
}

// String returns the line including its terminator.
func (l LineView) String() string {
	return l.text
}

// Len returns the character count including the terminator.
func (l LineView) Len() int {
	return l.chars
}

// HasTerminator reports whether the line ends in '\n'.
func (l LineView) HasTerminator() bool {
	return strings.HasSuffix(l.text, "\n")
}

// Visible returns the line without its '\n' terminator.
func (l LineView) Visible() string {
	return strings.TrimSuffix(l.text, "\n")
}

// VisibleLen returns the character count without the terminator.
func (l LineView) VisibleLen() int {
	if l.HasTerminator() {
		return l.chars - 1
	}
	return l.chars
}

// RuneAt returns the character at column col.
func (l LineView) RuneAt(col int) (rune, bool) {
	if col < 0 || col >= l.chars {
		return 0, false
	}
	i := 0
	for _, r := range l.text {
		if i == col {
			return r, true
		}
		i++
	}
	return 0, false
}
