// Package engine implements the editing core of Reflex.
//
// A FileBuffer ties together the pieces a single open document needs:
//
//   - buffer: rope-backed text storage addressed by line and character
//   - cursor: the ordered selection set, one of which is primary
//   - viewport: the window of lines and columns currently on screen
//   - vfs: the file system the document is loaded from and saved to
//
// # Editing
//
// Insert and Delete apply the same one-character edit at every
// selection in selection order. After each selection's edit the other
// selections are transformed so they keep pointing at the same text:
//
//	fb := engine.New(engine.WithContent("one\ntwo\n"))
//	fb.AddCursorBelow()
//	fb.Insert('>')     // ">one\n>two\n"
//
// Nothing a selection does can move it out of the text: every operation
// clamps carets before returning, and a position with nothing to delete
// is skipped instead of failing.
//
// # Lines
//
// A document has one line per '\n' plus a final line when the text does
// not end in '\n'. The position just past the last line is the end of
// buffer; typing there appends a new terminated line. An empty document
// has no lines, but typing into it behaves as if it had one empty line.
//
// # Persistence
//
// Open reads a UTF-8 file through a vfs.VFS, Save writes it back
// unchanged apart from the user's edits. A buffer becomes dirty on the
// first change and clean again only after a successful save or reload.
package engine
