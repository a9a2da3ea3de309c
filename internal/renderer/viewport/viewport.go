// Package viewport tracks which part of a buffer is on screen.
package viewport

import "sync"

// Size is an extent in screen cells.
type Size struct {
	Width  int
	Height int
}

// clamped returns s with both dimensions at least 1.
func (s Size) clamped() Size {
	return Size{Width: max(s.Width, 1), Height: max(s.Height, 1)}
}

// Viewport is the visible window onto a buffer: the first visible line
// and screen column plus the size of the text area. Columns are screen
// cells; callers convert character columns with Cells.
type Viewport struct {
	mu sync.RWMutex

	topLine    int
	leftColumn int

	width  int
	height int

	// Rows and columns kept between the cursor and the edges.
	marginV int
	marginH int
}

// NewViewport creates a viewport at the buffer origin.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	s := Size{Width: width, Height: height}.clamped()
	return &Viewport{width: s.Width, height: s.Height}
}

// Size returns the text area size.
func (v *Viewport) Size() Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Size{Width: v.width, Height: v.height}
}

// Resize updates the text area size. Dimensions below 1 become 1.
func (v *Viewport) Resize(s Size) {
	s = s.clamped()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = s.Width, s.Height
}

// Offset returns the first visible line and column.
func (v *Viewport) Offset() (line, col int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.leftColumn
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// SetMargins sets how many rows and columns ScrollToReveal keeps
// between the target and the edges. Negative values become 0.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.marginV = max(vertical, 0)
	v.marginH = max(horizontal, 0)
}

// VisibleLineRange returns the visible lines as [start, end).
func (v *Viewport) VisibleLineRange() (start, end int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.topLine + v.height
}

// IsPositionVisible reports whether line/col lies inside the viewport.
func (v *Viewport) IsPositionVisible(line, col int) bool {
	_, _, ok := v.BufferToScreen(line, col)
	return ok
}

// BufferToScreen converts buffer coordinates to coordinates relative to
// the text area. ok is false when the position is off screen.
func (v *Viewport) BufferToScreen(line, col int) (row, column int, ok bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	row = line - v.topLine
	column = col - v.leftColumn
	if row < 0 || row >= v.height || column < 0 || column >= v.width {
		return -1, -1, false
	}
	return row, column, true
}

// ScreenToBuffer converts text-area coordinates to buffer coordinates.
func (v *Viewport) ScreenToBuffer(row, column int) (line, col int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine + max(row, 0), v.leftColumn + max(column, 0)
}
