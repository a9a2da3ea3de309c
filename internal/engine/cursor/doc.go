// Package cursor provides positions, selections and the multi-selection
// set of a buffer.
//
// Positions are line/column pairs counted in characters. A Selection has
// an anchor and a cursor; the cursor is where typing happens. Set keeps
// the selections in the order they were created and never becomes empty.
//
// When one selection edits the buffer, the others are kept on the same
// text with TransformOthers:
//
//	set := cursor.NewSet(cursor.NewCaret(cursor.At(0, 1)))
//	set.Add(cursor.NewCaret(cursor.At(0, 4)))
//	// selection 0 inserted 'x' at (0:1)
//	set.TransformOthers(0, cursor.InsertEdit(cursor.At(0, 1), 'x'))
//	set.Get(1).Cursor // (0:5)
//
// Position and Selection are values and safe to share. Set is not
// safe for concurrent use.
package cursor
