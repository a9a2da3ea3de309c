package cursor

import "fmt"

// Position is a zero-based location in a buffer. X is the character
// column within line Y. XPreferred is the column vertical movement tries
// to return to when it passes through shorter lines.
type Position struct {
	X          int
	XPreferred int
	Y          int
}

// At returns a position at column x of line y with XPreferred == x.
func At(y, x int) Position {
	return Position{X: x, XPreferred: x, Y: y}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Compare orders positions by line, then column.
func (p Position) Compare(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	}
	return 0
}

// SamePlace reports whether both positions name the same line and
// column, ignoring XPreferred.
func (p Position) SamePlace(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Synced returns p with XPreferred reset to X.
func (p Position) Synced() Position {
	p.XPreferred = p.X
	return p
}

// Direction is a cursor movement direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
