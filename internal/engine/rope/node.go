package rope

import (
	"strings"
	"unicode/utf8"
)

// Tree shape bounds.
const (
	// MaxChildren is the maximum number of children of an internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum number of chunks in a leaf.
	MaxChunksPerLeaf = 4
)

// Node is a node of the rope's B+ tree. Leaves (height 0) hold chunks,
// internal nodes hold children and a copy of each child's summary so a
// descent never has to touch siblings.
type Node struct {
	height  uint8
	summary TextSummary

	children       []*Node
	childSummaries []TextSummary

	chunks []Chunk
}

func newLeafNode() *Node {
	return &Node{chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	n.recomputeSummary()
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	n := &Node{height: children[0].height + 1, children: children}
	n.recomputeSummary()
	return n
}

// IsLeaf reports whether n holds chunks.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of the subtree.
func (n *Node) Len() ByteOffset {
	return n.summary.Bytes
}

func (n *Node) recomputeSummary() {
	var sum TextSummary
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sum = sum.Add(c.Summary())
		}
		n.summary = sum
		return
	}
	n.childSummaries = make([]TextSummary, len(n.children))
	for i, child := range n.children {
		n.childSummaries[i] = child.summary
		sum = sum.Add(child.summary)
	}
	n.summary = sum
}

// clone copies the node's own slices; children and chunks are shared.
func (n *Node) clone() *Node {
	c := &Node{height: n.height, summary: n.summary}
	if n.IsLeaf() {
		c.chunks = append(make([]Chunk, 0, len(n.chunks)), n.chunks...)
		return c
	}
	c.children = append(make([]*Node, 0, len(n.children)), n.children...)
	c.childSummaries = append(make([]TextSummary, 0, len(n.childSummaries)), n.childSummaries...)
	return c
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the bytes in [start, end) of the subtree to sb.
func (n *Node) appendRange(sb *strings.Builder, start, end ByteOffset) {
	if start >= end {
		return
	}
	var pos ByteOffset
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := pos + ByteOffset(c.Len())
			if cEnd > start && pos < end {
				lo := int(max(start, pos) - pos)
				hi := int(min(end, cEnd) - pos)
				sb.WriteString(c.data[lo:hi])
			}
			pos = cEnd
		}
		return
	}
	for i, child := range n.children {
		cEnd := pos + n.childSummaries[i].Bytes
		if cEnd > start && pos < end {
			child.appendRange(sb, max(start, pos)-pos, min(end, cEnd)-pos)
		}
		pos = cEnd
	}
}

// split returns the subtrees holding [0, offset) and [offset, Len()).
func (n *Node) split(offset ByteOffset) (*Node, *Node) {
	if offset == 0 {
		return newLeafNode(), n
	}
	if offset >= n.Len() {
		return n, newLeafNode()
	}

	var pos ByteOffset
	if n.IsLeaf() {
		var left, right []Chunk
		for _, c := range n.chunks {
			cLen := ByteOffset(c.Len())
			switch {
			case pos+cLen <= offset:
				left = append(left, c)
			case pos >= offset:
				right = append(right, c)
			default:
				l, r := c.Split(int(offset - pos))
				left = append(left, l)
				right = append(right, r)
			}
			pos += cLen
		}
		return newLeafNodeWithChunks(left), newLeafNodeWithChunks(right)
	}

	var left, right []*Node
	for i, child := range n.children {
		cLen := n.childSummaries[i].Bytes
		switch {
		case pos+cLen <= offset:
			left = append(left, child)
		case pos >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - pos)
			if l.Len() > 0 {
				left = append(left, l)
			}
			if r.Len() > 0 {
				right = append(right, r)
			}
		}
		pos += cLen
	}
	return buildNodeFromChildren(left), buildNodeFromChildren(right)
}

// insertInChunk inserts text at offset by rewriting the chunk that
// contains it, copying only the path from the root. It fails when the
// chunk would grow past MaxChunkSize.
func (n *Node) insertInChunk(offset ByteOffset, text string) (*Node, bool) {
	var pos ByteOffset
	if n.IsLeaf() {
		for i, c := range n.chunks {
			cEnd := pos + ByteOffset(c.Len())
			if offset <= cEnd {
				if c.Len()+len(text) > MaxChunkSize {
					return nil, false
				}
				at := int(offset - pos)
				leaf := n.clone()
				leaf.chunks[i] = NewChunk(c.data[:at] + text + c.data[at:])
				leaf.recomputeSummary()
				return leaf, true
			}
			pos = cEnd
		}
		return nil, false
	}

	for i, s := range n.childSummaries {
		cEnd := pos + s.Bytes
		if offset <= cEnd {
			child, ok := n.children[i].insertInChunk(offset-pos, text)
			if !ok {
				return nil, false
			}
			parent := n.clone()
			parent.children[i] = child
			parent.recomputeSummary()
			return parent, true
		}
		pos = cEnd
	}
	return nil, false
}

// buildNodeFromChildren groups nodes of equal height under as few
// levels of parents as needed.
func buildNodeFromChildren(children []*Node) *Node {
	switch {
	case len(children) == 0:
		return newLeafNode()
	case len(children) == 1:
		return children[0]
	case len(children) <= MaxChildren:
		return newInternalNode(children)
	}

	parents := make([]*Node, 0, len(children)/MaxChildren+1)
	for i := 0; i < len(children); i += MaxChildren {
		end := min(i+MaxChildren, len(children))
		parents = append(parents, newInternalNode(children[i:end:end]))
	}
	return buildNodeFromChildren(parents)
}

func concat(left, right *Node) *Node {
	if left == nil || left.Len() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Len() == 0 {
		return left
	}

	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	if left.IsLeaf() {
		return concatLeaves(left, right)
	}
	children := make([]*Node, 0, len(left.children)+len(right.children))
	children = append(children, left.children...)
	children = append(children, right.children...)
	return buildNodeFromChildren(children)
}

// concatLeaves joins two leaves, folding small neighbouring chunks
// together so repeated single-character edits do not fragment the tree.
func concatLeaves(left, right *Node) *Node {
	chunks := make([]Chunk, 0, len(left.chunks)+len(right.chunks))
	chunks = append(chunks, left.chunks...)
	for _, c := range right.chunks {
		if last := len(chunks) - 1; last >= 0 && chunks[last].Len()+c.Len() <= MinChunkSize {
			chunks[last] = NewChunk(chunks[last].data + c.data)
			continue
		}
		chunks = append(chunks, c)
	}

	if len(chunks) <= MaxChunksPerLeaf {
		return newLeafNodeWithChunks(chunks)
	}
	half := len(chunks) / 2
	return newInternalNode([]*Node{
		newLeafNodeWithChunks(chunks[:half:half]),
		newLeafNodeWithChunks(chunks[half:]),
	})
}

// lineStart returns the byte offset just after the line-th newline, 0 for
// line 0, and Len() when the subtree has fewer newlines.
func (n *Node) lineStart(line uint32) ByteOffset {
	if line == 0 {
		return 0
	}
	if line > n.summary.Newlines {
		return n.Len()
	}

	var base ByteOffset
	for !n.IsLeaf() {
		next := -1
		for i, s := range n.childSummaries {
			if s.Newlines >= line {
				next = i
				break
			}
			line -= s.Newlines
			base += s.Bytes
		}
		if next < 0 {
			return base
		}
		n = n.children[next]
	}

	for _, c := range n.chunks {
		s := c.Summary()
		if s.Newlines >= line {
			return base + ByteOffset(nthNewline(c.data, line)+1)
		}
		line -= s.Newlines
		base += s.Bytes
	}
	return base
}

// charToByte converts a char offset to a byte offset, clamping to Len().
func (n *Node) charToByte(char CharOffset) ByteOffset {
	if char >= n.summary.Chars {
		return n.Len()
	}
	if n.summary.Flags&FlagASCII != 0 {
		return ByteOffset(char)
	}

	var base ByteOffset
	for !n.IsLeaf() {
		next := -1
		for i, s := range n.childSummaries {
			if char < s.Chars {
				next = i
				break
			}
			char -= s.Chars
			base += s.Bytes
		}
		if next < 0 {
			return base
		}
		n = n.children[next]
	}

	for _, c := range n.chunks {
		s := c.Summary()
		if char < s.Chars {
			return base + c.charToByte(char)
		}
		char -= s.Chars
		base += s.Bytes
	}
	return base
}

// byteToChar converts a byte offset to a char offset, clamping to the
// subtree's char count.
func (n *Node) byteToChar(offset ByteOffset) CharOffset {
	if offset >= n.Len() {
		return n.summary.Chars
	}
	if n.summary.Flags&FlagASCII != 0 {
		return CharOffset(offset)
	}

	var base CharOffset
	for !n.IsLeaf() {
		next := -1
		for i, s := range n.childSummaries {
			if offset < s.Bytes {
				next = i
				break
			}
			offset -= s.Bytes
			base += s.Chars
		}
		if next < 0 {
			return base
		}
		n = n.children[next]
	}

	for _, c := range n.chunks {
		s := c.Summary()
		if offset < s.Bytes {
			return base + c.byteToChar(offset)
		}
		offset -= s.Bytes
		base += s.Chars
	}
	return base
}

// runeAt decodes the code point at a char offset that must be in range.
func (n *Node) runeAt(char CharOffset) rune {
	for !n.IsLeaf() {
		next := -1
		for i, s := range n.childSummaries {
			if char < s.Chars {
				next = i
				break
			}
			char -= s.Chars
		}
		if next < 0 {
			return utf8.RuneError
		}
		n = n.children[next]
	}
	for _, c := range n.chunks {
		if char < c.summary.Chars {
			r, _ := utf8.DecodeRuneInString(c.data[c.charToByte(char):])
			return r
		}
		char -= c.summary.Chars
	}
	return utf8.RuneError
}
