package cursor

import "fmt"

// Selection is a span between an anchor and a cursor. The cursor is the
// active end where edits happen. When both are at the same place the
// selection is a plain caret.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Cursor Position
}

// NewSelection creates a selection from anchor to cursor.
func NewSelection(anchor, cursor Position) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}
}

// NewCaret creates a selection whose anchor and cursor are both p.
func NewCaret(p Position) Selection {
	return Selection{Anchor: p, Cursor: p}
}

// IsCaret reports whether the selection covers no text.
func (s Selection) IsCaret() bool {
	return s.Anchor.SamePlace(s.Cursor)
}

// Collapse returns the selection with its anchor snapped to its cursor.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Cursor, Cursor: s.Cursor}
}

// Start returns the earlier end of the selection.
func (s Selection) Start() Position {
	if s.Anchor.Compare(s.Cursor) <= 0 {
		return s.Anchor
	}
	return s.Cursor
}

// End returns the later end of the selection.
func (s Selection) End() Position {
	if s.Anchor.Compare(s.Cursor) <= 0 {
		return s.Cursor
	}
	return s.Anchor
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsCaret() {
		return s.Cursor.String()
	}
	return fmt.Sprintf("[%s-%s]", s.Anchor, s.Cursor)
}
