package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope. Every edit returns a new Rope that shares
// untouched subtrees with the original, so old values stay valid as
// snapshots and may be read from any goroutine.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope holding s.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	nodes := make([]*Node, 0, len(chunks)/MaxChunksPerLeaf+1)
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaf := make([]Chunk, end-i)
		copy(leaf, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leaf))
	}
	return Rope{root: buildNodeFromChildren(nodes)}
}

// Len returns the byte length.
func (r Rope) Len() ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LenChars returns the number of code points.
func (r Rope) LenChars() CharOffset {
	return r.Summary().Chars
}

// LineCount returns the number of newline-separated segments, which is
// the newline count plus one.
func (r Rope) LineCount() uint32 {
	return r.Summary().Newlines + 1
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the metrics of the whole rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// String returns the full text. Use sparingly on large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(r.Len()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
func (r Rope) Slice(start, end ByteOffset) string {
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(end - start))
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// WriteTo writes the rope's bytes to w chunk by chunk.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Chunks()
	for it.Next() {
		n, err := io.WriteString(w, it.Chunk().String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// CharAt returns the code point at a char offset.
func (r Rope) CharAt(char CharOffset) (rune, bool) {
	if char >= r.LenChars() {
		return 0, false
	}
	return r.root.runeAt(char), true
}

// CharToByte converts a char offset to a byte offset. Offsets past the
// end map to Len().
func (r Rope) CharToByte(char CharOffset) ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.charToByte(char)
}

// ByteToChar converts a byte offset to a char offset. Offsets past the
// end map to LenChars().
func (r Rope) ByteToChar(offset ByteOffset) CharOffset {
	if r.root == nil {
		return 0
	}
	return r.root.byteToChar(offset)
}

// Insert inserts text at a byte offset, which is clamped to Len().
func (r Rope) Insert(offset ByteOffset, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.IsEmpty() {
		return FromString(text)
	}
	offset = min(offset, r.Len())

	if len(text) <= MaxChunkSize {
		if root, ok := r.root.insertInChunk(offset, text); ok {
			return Rope{root: root}
		}
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the byte range [start, end), clamped to the rope.
func (r Rope) Delete(start, end ByteOffset) Rope {
	end = min(end, r.Len())
	if start >= end {
		return r
	}
	if start == 0 && end == r.Len() {
		return New()
	}

	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Replace replaces the byte range [start, end) with text.
func (r Rope) Replace(start, end ByteOffset, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

// Split returns the ropes holding [0, offset) and [offset, Len()).
func (r Rope) Split(offset ByteOffset) (Rope, Rope) {
	if r.root == nil || offset == 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat returns r followed by other.
func (r Rope) Concat(other Rope) Rope {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// LineStartOffset returns the byte offset where the 0-indexed line
// starts. Lines past the last newline map to Len().
func (r Rope) LineStartOffset(line uint32) ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.lineStart(line)
}

// LineEndOffset returns the byte offset of the line's terminating
// newline, or Len() for the last segment.
func (r Rope) LineEndOffset(line uint32) ByteOffset {
	next := r.LineStartOffset(line + 1)
	if line+1 > r.Summary().Newlines {
		return r.Len()
	}
	return next - 1
}

// Line returns the text of the line including its '\n' terminator when
// it has one.
func (r Rope) Line(line uint32) string {
	return r.Slice(r.LineStartOffset(line), r.LineStartOffset(line+1))
}

// LineToChar returns the char offset where the line starts.
func (r Rope) LineToChar(line uint32) CharOffset {
	return r.ByteToChar(r.LineStartOffset(line))
}

// Height returns the number of levels in the tree.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equals reports whether both ropes hold the same text.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() || r.LenChars() != other.LenChars() {
		return false
	}
	return r.String() == other.String()
}
