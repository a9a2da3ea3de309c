package engine

import "github.com/dshills/reflex/internal/engine/cursor"

// Insert types r at every selection, in selection order. Each caret
// advances past the new character ('\n' moves it to the start of the
// next line) and every other selection is shifted to stay on the same
// text. Typing on the line past the end of a non-empty document first
// gives it a '\n' so the line becomes real; an empty document is
// treated as one empty line.
func (fb *FileBuffer) Insert(r rune) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i := 0; i < fb.cursors.Count(); i++ {
		sel := fb.cursors.Get(i)
		at := sel.Cursor
		pos := fb.text.LineToChar(at.Y) + at.X

		if at.Y >= fb.text.LineCount() && !fb.text.IsEmpty() {
			if err := fb.text.Insert(pos, "\n"); err != nil {
				continue
			}
		}
		if err := fb.text.Insert(pos, string(r)); err != nil {
			continue
		}

		edit := cursor.InsertEdit(at, r)
		next := cursor.At(at.Y, at.X+1)
		if r == '\n' {
			next = cursor.At(at.Y+1, 0)
		}
		fb.cursors.Replace(i, cursor.Selection{
			Anchor: cursor.TransformPosition(sel.Anchor, edit),
			Cursor: next,
		})
		fb.cursors.TransformOthers(i, edit)
	}

	fb.empty = false
}

// InsertString types each character of s in turn.
func (fb *FileBuffer) InsertString(s string) {
	for _, r := range s {
		fb.Insert(r)
	}
}

// Delete removes one character at every selection, in selection order:
// the one before the caret when backspace is set, otherwise the one
// under it. A selection with nothing to remove is skipped. Carets end up
// where the removed character was.
func (fb *FileBuffer) Delete(backspace bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i := 0; i < fb.cursors.Count(); i++ {
		sel := fb.cursors.Get(i)
		at := sel.Cursor
		pos := fb.text.LineToChar(at.Y) + at.X

		var gone cursor.Position
		if backspace {
			if at.Y == 0 && at.X == 0 {
				continue
			}
			pos--
			gone = cursor.At(at.Y, at.X-1)
			if r, ok := fb.text.CharAt(pos); ok && r == '\n' {
				prev, _ := fb.text.Line(at.Y - 1)
				gone = cursor.At(at.Y-1, prev.Len()-1)
			}
		} else {
			if at.Y >= fb.text.LineCount() {
				continue
			}
			gone = at.Synced()
		}

		r, ok := fb.text.CharAt(pos)
		if !ok {
			continue
		}
		if err := fb.text.Delete(pos, pos); err != nil {
			continue
		}

		edit := cursor.RemoveEdit(gone, r)
		fb.cursors.Replace(i, cursor.Selection{
			Anchor: cursor.TransformPosition(sel.Anchor, edit),
			Cursor: gone,
		})
		fb.cursors.TransformOthers(i, edit)
	}
	fb.clampAll()
}
