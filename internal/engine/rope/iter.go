package rope

import "unicode/utf8"

type chunkIterFrame struct {
	node *Node
	next int
}

// ChunkIterator walks the chunks of a rope in order.
type ChunkIterator struct {
	stack  []chunkIterFrame
	chunk  Chunk
	offset ByteOffset
	seen   bool
}

// Chunks returns an iterator positioned before the first chunk.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]chunkIterFrame, 0, 8)}
	if r.root != nil {
		it.stack = append(it.stack, chunkIterFrame{node: r.root})
	}
	return it
}

// Next advances to the next chunk and reports whether there is one.
func (it *ChunkIterator) Next() bool {
	if it.seen {
		it.offset += ByteOffset(it.chunk.Len())
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.node
		if n.IsLeaf() {
			if top.next < len(n.chunks) {
				it.chunk = n.chunks[top.next]
				top.next++
				it.seen = true
				return true
			}
		} else if top.next < len(n.children) {
			child := n.children[top.next]
			top.next++
			it.stack = append(it.stack, chunkIterFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.seen = false
	return false
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// Offset returns the byte offset of the current chunk.
func (it *ChunkIterator) Offset() ByteOffset {
	return it.offset
}

// RuneIterator walks the code points of a rope.
type RuneIterator struct {
	chunks *ChunkIterator
	data   string
	pos    int
	r      rune
	size   int
	char   CharOffset
	seen   bool
}

// Runes returns an iterator positioned before the first code point.
func (r Rope) Runes() *RuneIterator {
	return &RuneIterator{chunks: r.Chunks()}
}

// Next advances to the next code point and reports whether there is one.
func (it *RuneIterator) Next() bool {
	if it.seen {
		it.pos += it.size
		it.char++
	}
	for it.pos >= len(it.data) {
		if !it.chunks.Next() {
			it.seen = false
			return false
		}
		it.data = it.chunks.Chunk().String()
		it.pos = 0
	}
	it.r, it.size = utf8.DecodeRuneInString(it.data[it.pos:])
	it.seen = true
	return true
}

// Rune returns the current code point.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// Offset returns the char offset of the current code point.
func (it *RuneIterator) Offset() CharOffset {
	return it.char
}
