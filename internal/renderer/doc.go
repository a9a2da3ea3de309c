// Package renderer draws the editor screen.
//
// The screen is split into three areas:
//
//	┌─────────────────────────────────────────┐
//	│ text area: visible lines, ~ past end    │
//	│                                         │
//	├─────────────────────────────────────────┤
//	│  NORMAL main.go (Dirty) - 42 lines      │  status bar
//	├─────────────────────────────────────────┤
//	│ :w                                      │  command / message line
//	└─────────────────────────────────────────┘
//
// The renderer holds no editor state. Each call to Render receives a
// Frame describing the document and the mode, draws it on the backend
// and places the terminal cursor.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	fb.ShiftViewport(r.TextAreaSize())
//	r.Render(renderer.Frame{Doc: fb, Mode: "NORMAL"})
package renderer
