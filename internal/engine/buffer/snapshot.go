package buffer

import (
	"bytes"
	"sync/atomic"

	"github.com/dshills/reflex/internal/engine/rope"
)

// RevisionID identifies one state of a buffer's content. Every mutation
// gets a new, process-wide unique ID.
type RevisionID uint64

var revisionCounter atomic.Uint64

// NewRevisionID returns the next revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(revisionCounter.Add(1))
}

// Snapshot is an immutable view of a buffer at one revision. It can be
// read from any goroutine while the buffer keeps changing.
type Snapshot struct {
	rope       rope.Rope
	revisionID RevisionID
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// Text returns the full content.
func (s *Snapshot) Text() string {
	return s.rope.String()
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return lineCount(s.rope)
}

// Line returns line i including its terminator.
func (s *Snapshot) Line(i int) (LineView, bool) {
	return line(s.rope, i)
}

// Bytes returns the content exactly as stored.
func (s *Snapshot) Bytes() []byte {
	var out bytes.Buffer
	out.Grow(int(s.rope.Len()))
	_, _ = s.rope.WriteTo(&out)
	return out.Bytes()
}

// LenChars returns the number of characters.
func (s *Snapshot) LenChars() int {
	return int(s.rope.LenChars())
}
