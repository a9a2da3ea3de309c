package cursor

// Edit describes a single-character change made at a line/column point.
// Positions elsewhere in the buffer use it to stay on the same text.
type Edit struct {
	// At is where the character was inserted, or where the removed
	// character used to be. XPreferred is ignored.
	At Position

	// Newline is set when the character was '\n'.
	Newline bool

	// Removed is set for deletions.
	Removed bool
}

// InsertEdit describes inserting r at p.
func InsertEdit(p Position, r rune) Edit {
	return Edit{At: p, Newline: r == '\n'}
}

// RemoveEdit describes removing r, which sat at p.
func RemoveEdit(p Position, r rune) Edit {
	return Edit{At: p, Newline: r == '\n', Removed: true}
}

// TransformPosition returns p adjusted for e.
//
// Insertion rules, with e at (y, x):
//   - char: positions on line y at column >= x move right by one
//   - newline: positions on line y at column >= x move to the start of
//     line y+1; positions on later lines move down one line
//
// Removal rules, with e at (y, x):
//   - char: positions on line y after column x move left by one
//   - newline: line y+1 is joined onto line y at column x; later lines
//     move up one line
//
// A moved position has XPreferred reset to its new X.
func TransformPosition(p Position, e Edit) Position {
	y, x := e.At.Y, e.At.X
	moved := p

	switch {
	case !e.Removed && !e.Newline:
		if p.Y == y && p.X >= x {
			moved.X++
		}
	case !e.Removed && e.Newline:
		if p.Y == y && p.X >= x {
			moved.Y++
			moved.X -= x
		} else if p.Y > y {
			moved.Y++
		}
	case e.Removed && !e.Newline:
		if p.Y == y && p.X > x {
			moved.X--
		}
	default:
		if p.Y == y+1 {
			moved.Y = y
			moved.X += x
		} else if p.Y > y+1 {
			moved.Y--
		}
	}

	if moved.X != p.X {
		moved.XPreferred = moved.X
	}
	return moved
}

// TransformSelection adjusts both ends of sel for e.
func TransformSelection(sel Selection, e Edit) Selection {
	return Selection{
		Anchor: TransformPosition(sel.Anchor, e),
		Cursor: TransformPosition(sel.Cursor, e),
	}
}
