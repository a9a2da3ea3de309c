package engine

import "github.com/dshills/reflex/internal/engine/cursor"

// AddSelection adds sel, clamped to the text, and returns its index.
// The primary selection does not change.
func (fb *FileBuffer) AddSelection(sel cursor.Selection) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.cursors.Add(fb.clampSelection(sel))
}

// SetCursor collapses the primary selection to a caret at p, clamped to
// the text.
func (fb *FileBuffer) SetCursor(p cursor.Position) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.cursors.Replace(fb.cursors.PrimaryIndex(), fb.clampSelection(cursor.NewCaret(p.Synced())))
}

// SetPrimary makes selection i the primary one.
func (fb *FileBuffer) SetPrimary(i int) bool {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.cursors.SetPrimary(i)
}

// AddCursorBelow puts a new caret on the line below the most recently
// added selection, at its preferred column, and makes it primary.
// Reports false when there is no line below.
func (fb *FileBuffer) AddCursorBelow() bool {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	last := fb.cursors.Get(fb.cursors.Count() - 1).Cursor
	y := last.Y + 1
	if y >= fb.text.LineCount() {
		return false
	}
	p := cursor.Position{Y: y, XPreferred: last.XPreferred}
	p.X = fb.column(y, p.XPreferred)
	fb.cursors.SetPrimary(fb.cursors.Add(cursor.NewCaret(p)))
	return true
}

// ClearSecondarySelections drops every selection but the primary.
func (fb *FileBuffer) ClearSecondarySelections() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.cursors.ClearSecondary()
}

// column returns the column a cursor on line y lands on when it wants
// to be at preferred: the last character of the line at most.
func (fb *FileBuffer) column(y, preferred int) int {
	line, ok := fb.text.Line(y)
	if !ok {
		return 0
	}
	return max(min(preferred, line.Len()-1), 0)
}

// clampPosition moves p onto the text. The line past the last one is
// only valid when the text is empty or ends with a newline; there the
// column must be 0. X changes reset XPreferred.
func (fb *FileBuffer) clampPosition(p cursor.Position) cursor.Position {
	n := fb.text.LineCount()
	out := p
	out.Y = max(out.Y, 0)

	if out.Y >= n {
		last, ok := fb.text.Line(n - 1)
		if ok && !last.HasTerminator() {
			out.Y = n - 1
			out.X = min(out.X, last.VisibleLen())
		} else {
			out.Y = n
			out.X = 0
		}
	} else if line, ok := fb.text.Line(out.Y); ok {
		out.X = min(out.X, line.VisibleLen())
	}
	out.X = max(out.X, 0)

	if out.X != p.X {
		out.XPreferred = out.X
	}
	return out
}

func (fb *FileBuffer) clampSelection(sel cursor.Selection) cursor.Selection {
	return cursor.Selection{
		Anchor: fb.clampPosition(sel.Anchor),
		Cursor: fb.clampPosition(sel.Cursor),
	}
}

func (fb *FileBuffer) clampAll() {
	fb.cursors.MapInPlace(func(_ int, sel cursor.Selection) cursor.Selection {
		return fb.clampSelection(sel)
	})
}
