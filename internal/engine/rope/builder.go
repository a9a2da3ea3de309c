package rope

import (
	"io"
	"strings"
)

// Builder accumulates text and produces a balanced rope in one pass.
// Bytes are passed through untouched.
type Builder struct {
	chunks  []Chunk
	pending strings.Builder
	total   int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{chunks: make([]Chunk, 0, 64)}
}

// WriteString appends s.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	b.total += len(s)
	b.pending.WriteString(s)
	if b.pending.Len() >= MaxChunkSize*2 {
		b.flush(false)
	}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.WriteString(string(p))
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteString(string(buf[:n]))
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Len returns the number of bytes written.
func (b *Builder) Len() int {
	return b.total
}

// flush moves pending text into chunks. Unless final is set, a code
// point split across two writes stays pending.
func (b *Builder) flush(final bool) {
	s := b.pending.String()
	if len(s) == 0 {
		return
	}

	keep := 0
	if !final {
		keep = incompleteSuffix(s)
	}
	b.chunks = append(b.chunks, splitIntoChunks(s[:len(s)-keep])...)
	b.pending.Reset()
	b.pending.WriteString(s[len(s)-keep:])
}

// Build returns the rope and resets the builder.
func (b *Builder) Build() Rope {
	b.flush(true)
	r := buildFromChunks(b.chunks)
	b.chunks = nil
	b.pending.Reset()
	b.total = 0
	return r
}

// incompleteSuffix returns how many trailing bytes of s form the start
// of a multi-byte sequence that has not been completed yet.
func incompleteSuffix(s string) int {
	for i := 1; i <= 3 && i <= len(s); i++ {
		c := s[len(s)-i]
		if !isUTF8Start(c) {
			continue
		}
		var need int
		switch {
		case c&0xE0 == 0xC0:
			need = 2
		case c&0xF0 == 0xE0:
			need = 3
		case c&0xF8 == 0xF0:
			need = 4
		default:
			return 0
		}
		if need > i {
			return i
		}
		return 0
	}
	return 0
}

// FromReader reads r to EOF into a rope.
func FromReader(r io.Reader) (Rope, error) {
	b := NewBuilder()
	if _, err := b.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return b.Build(), nil
}
