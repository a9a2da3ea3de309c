package engine

import (
	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/renderer/viewport"
)

// ShiftViewport resizes the viewport to size and scrolls it just enough
// to keep the primary caret visible. Horizontal scrolling is measured in
// screen cells, so wide characters push the view further.
func (fb *FileBuffer) ShiftViewport(size viewport.Size) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	fb.view.Resize(size)
	p := fb.cursors.Primary().Cursor
	start := cellColumn(fb.text, p)
	fb.view.ScrollToReveal(p.Y, start+cellWidth(fb.text, p)-1)
	fb.view.ScrollToReveal(p.Y, start)
}

// cellWidth returns the cells taken by the character under p, 1 past the
// end of a line.
func cellWidth(text *buffer.Buffer, p cursor.Position) int {
	line, ok := text.Line(p.Y)
	if !ok {
		return 1
	}
	r, ok := line.RuneAt(p.X)
	if !ok || r == '\n' {
		return 1
	}
	return max(viewport.RuneCells(r), 1)
}

// cellColumn returns the screen column of p on its line.
func cellColumn(text *buffer.Buffer, p cursor.Position) int {
	line, ok := text.Line(p.Y)
	if !ok {
		return p.X
	}
	return viewport.Cells(line.Visible(), p.X)
}

// Offset returns the first visible line (Y) and screen column (X).
func (fb *FileBuffer) Offset() cursor.Position {
	line, col := fb.view.Offset()
	return cursor.At(line, col)
}

// ViewSize returns the size of the viewport.
func (fb *FileBuffer) ViewSize() viewport.Size {
	return fb.view.Size()
}

// ScreenPosition converts p to text-area row and cell coordinates. ok is
// false when p is scrolled out of view.
func (fb *FileBuffer) ScreenPosition(p cursor.Position) (row, col int, ok bool) {
	return fb.view.BufferToScreen(p.Y, cellColumn(fb.buf(), p))
}

// PrimaryScreenPosition returns where the primary caret is drawn.
func (fb *FileBuffer) PrimaryScreenPosition() (row, col int, ok bool) {
	return fb.ScreenPosition(fb.Primary().Cursor)
}

// CharUnderCursor returns the character drawn at p. Line terminators and
// positions past the text read as a space.
func (fb *FileBuffer) CharUnderCursor(p cursor.Position) rune {
	line, ok := fb.buf().Line(p.Y)
	if !ok {
		return ' '
	}
	r, ok := line.RuneAt(p.X)
	if !ok || r == '\n' || r == '\r' {
		return ' '
	}
	return r
}
