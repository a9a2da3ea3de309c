package engine

import "github.com/dshills/reflex/internal/engine/cursor"

// MoveCursors moves every caret one step in dir and collapses all
// selections. Vertical moves keep the preferred column; horizontal moves
// set it. Carets never move past the last character of a line (its
// terminator counts) nor below the last line.
func (fb *FileBuffer) MoveCursors(dir cursor.Direction) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	n := fb.text.LineCount()
	fb.cursors.MapInPlace(func(_ int, sel cursor.Selection) cursor.Selection {
		p := sel.Cursor
		switch dir {
		case cursor.Up:
			p.Y = max(p.Y-1, 0)
		case cursor.Down:
			if p.Y+1 < n {
				p.Y++
			}
		case cursor.Left:
			p.XPreferred = max(p.X-1, 0)
		case cursor.Right:
			if line, ok := fb.text.Line(p.Y); ok && p.X < line.Len()-1 {
				p.XPreferred = p.X + 1
			}
		}
		p.X = fb.column(p.Y, p.XPreferred)
		return cursor.NewCaret(p)
	})
}
