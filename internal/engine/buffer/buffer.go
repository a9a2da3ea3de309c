package buffer

import (
	"errors"
	"io"
	"sync"

	"github.com/dshills/reflex/internal/engine/rope"
)

// ErrOutOfRange is returned when a char index or range falls outside the
// buffer.
var ErrOutOfRange = errors.New("index out of range")

// Buffer is the text of one document, addressed by character (code
// point) index. Lines are the segments separated by '\n'; a trailing
// segment counts as a line only when it is non-empty.
// All methods are safe for concurrent use.
type Buffer struct {
	mu         sync.RWMutex
	rope       rope.Rope
	revisionID RevisionID
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{rope: rope.New(), revisionID: NewRevisionID()}
}

// NewBufferFromString creates a buffer holding s.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{rope: rope.FromString(s), revisionID: NewRevisionID()}
}

// NewBufferFromBytes creates a buffer holding a copy of data.
func NewBufferFromBytes(data []byte) *Buffer {
	return NewBufferFromString(string(data))
}

// NewBufferFromReader reads r to EOF into a new buffer.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	rp, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	return &Buffer{rope: rp, revisionID: NewRevisionID()}, nil
}

// Text returns the full content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// Bytes returns the content exactly as stored.
func (b *Buffer) Bytes() []byte {
	return b.Snapshot().Bytes()
}

// WriteTo writes the content to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.RLock()
	r := b.rope
	b.mu.RUnlock()
	return r.WriteTo(w)
}

// LenChars returns the number of characters.
func (b *Buffer) LenChars() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return int(b.rope.LenChars())
}

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.IsEmpty()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineCount(b.rope)
}

// Line returns line i including its terminator, or false when i is not
// a line.
func (b *Buffer) Line(i int) (LineView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return line(b.rope, i)
}

// LineToChar returns the char index at which line i starts. Passing
// LineCount() yields the position just past the last line.
func (b *Buffer) LineToChar(i int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineToChar(b.rope, i)
}

// CharAt returns the character at char index i.
func (b *Buffer) CharAt(i int) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.CharAt(rope.CharOffset(i))
}

// Insert inserts text before char index at. Inserting at LenChars()
// appends.
func (b *Buffer) Insert(at int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if at < 0 || at > int(b.rope.LenChars()) {
		return ErrOutOfRange
	}
	if text == "" {
		return nil
	}
	b.rope = b.rope.Insert(b.rope.CharToByte(rope.CharOffset(at)), text)
	b.revisionID = NewRevisionID()
	return nil
}

// Delete removes the characters first through last, inclusive.
func (b *Buffer) Delete(first, last int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if first < 0 || first > last || last >= int(b.rope.LenChars()) {
		return ErrOutOfRange
	}
	start := b.rope.CharToByte(rope.CharOffset(first))
	end := b.rope.CharToByte(rope.CharOffset(last + 1))
	b.rope = b.rope.Delete(start, end)
	b.revisionID = NewRevisionID()
	return nil
}

// Reset replaces the whole content.
func (b *Buffer) Reset(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rope = rope.FromString(text)
	b.revisionID = NewRevisionID()
}

// RevisionID returns the identifier of the current content.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Snapshot returns a read-only view of the current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{rope: b.rope, revisionID: b.revisionID}
}

func lineCount(r rope.Rope) int {
	s := r.Summary()
	n := int(s.Newlines)
	if s.LastLineLen > 0 {
		n++
	}
	return n
}

func line(r rope.Rope, i int) (LineView, bool) {
	if i < 0 || i >= lineCount(r) {
		return LineView{}, false
	}
	return newLineView(r.Line(uint32(i))), true
}

func lineToChar(r rope.Rope, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= lineCount(r) {
		return int(r.LenChars())
	}
	return int(r.LineToChar(uint32(i)))
}
