package rope

// Chunk size bounds, in bytes.
const (
	// MinChunkSize is the smallest chunk the splitter produces, except the last.
	MinChunkSize = 128

	// MaxChunkSize is the largest chunk stored in a leaf.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when splitting long text.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk is an immutable piece of text stored in a leaf node, together
// with its precomputed summary.
type Chunk struct {
	data    string
	summary TextSummary
}

// NewChunk creates a chunk from s.
func NewChunk(s string) Chunk {
	return Chunk{data: s, summary: ComputeSummary(s)}
}

// String returns the chunk's text.
func (c Chunk) String() string { return c.data }

// Summary returns the chunk's metrics.
func (c Chunk) Summary() TextSummary { return c.summary }

// Len returns the byte length of the chunk.
func (c Chunk) Len() int { return len(c.data) }

// IsEmpty reports whether the chunk holds no text.
func (c Chunk) IsEmpty() bool { return len(c.data) == 0 }

// Split splits the chunk at a byte offset that must lie on a code point
// boundary.
func (c Chunk) Split(offset int) (Chunk, Chunk) {
	if offset <= 0 {
		return Chunk{}, c
	}
	if offset >= len(c.data) {
		return c, Chunk{}
	}
	return NewChunk(c.data[:offset]), NewChunk(c.data[offset:])
}

// charToByte converts a char offset inside the chunk to a byte offset.
func (c Chunk) charToByte(char CharOffset) ByteOffset {
	if char >= c.summary.Chars {
		return ByteOffset(len(c.data))
	}
	if c.summary.Flags&FlagASCII != 0 {
		return ByteOffset(char)
	}
	return ByteOffset(charToByteIn(c.data, char))
}

// byteToChar converts a byte offset inside the chunk to a char offset.
func (c Chunk) byteToChar(offset ByteOffset) CharOffset {
	if offset >= ByteOffset(len(c.data)) {
		return c.summary.Chars
	}
	if c.summary.Flags&FlagASCII != 0 {
		return CharOffset(offset)
	}
	var n CharOffset
	for i := range c.data {
		if ByteOffset(i) >= offset {
			break
		}
		n++
	}
	return n
}

// splitIntoChunks cuts s into chunks no longer than MaxChunkSize.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, len(s)/TargetChunkSize+1)
	for len(s) > MaxChunkSize {
		at := findSplitPoint(s, TargetChunkSize)
		chunks = append(chunks, NewChunk(s[:at]))
		s = s[at:]
	}
	return append(chunks, NewChunk(s))
}

// findSplitPoint picks a byte index near target that is a code point
// boundary, preferring the position just after a newline.
func findSplitPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := max(target-MinChunkSize/4, 1)
	hi := min(target+MinChunkSize/4, len(s))
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	pos := target
	for pos > 0 && !isUTF8Start(s[pos]) {
		pos--
	}
	if pos == 0 {
		// A run of continuation bytes; any cut keeps the bytes intact.
		return target
	}
	return pos
}

// isUTF8Start reports whether b starts a UTF-8 sequence.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}
