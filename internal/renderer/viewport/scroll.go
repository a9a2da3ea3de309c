package viewport

// ScrollTo places line and col at the top-left corner.
func (v *Viewport) ScrollTo(line, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = max(line, 0)
	v.leftColumn = max(col, 0)
}

// ScrollBy moves the viewport by a number of lines and columns, stopping
// at the buffer origin.
func (v *Viewport) ScrollBy(lines, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = max(v.topLine+lines, 0)
	v.leftColumn = max(v.leftColumn+cols, 0)
}

// Reset returns the viewport to the buffer origin.
func (v *Viewport) Reset() {
	v.ScrollTo(0, 0)
}

// ScrollToReveal scrolls as little as possible so line/col ends up inside
// the viewport, at least the configured margins away from each edge.
// Each axis is handled on its own: a target at or past the far edge
// brings the offset up to it, a target before the offset brings the
// offset down to it. Reports whether the offset changed.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	top := reveal(v.topLine, line, v.height, v.marginV)
	left := reveal(v.leftColumn, col, v.width, v.marginH)
	if top == v.topLine && left == v.leftColumn {
		return false
	}
	v.topLine, v.leftColumn = top, left
	return true
}

// reveal returns the new offset along one axis so that pos lies in
// [offset+margin, offset+extent-margin).
func reveal(offset, pos, extent, margin int) int {
	margin = min(margin, (extent-1)/2)
	switch {
	case pos-offset >= extent-margin:
		return pos - extent + 1 + margin
	case pos < offset+margin:
		return max(pos-margin, 0)
	}
	return offset
}
