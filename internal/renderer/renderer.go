package renderer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/renderer/backend"
	"github.com/dshills/reflex/internal/renderer/viewport"
)

// Document is the read side of an open buffer.
type Document interface {
	// Snapshot returns the text at one revision. A frame is drawn from a
	// single snapshot.
	Snapshot() *buffer.Snapshot

	// Offset returns the first visible line (Y) and screen column (X).
	Offset() cursor.Position

	// PrimaryScreenPosition returns the primary caret relative to the
	// text area, in screen cells.
	PrimaryScreenPosition() (row, col int, ok bool)

	Name() string
	Path() string
	IsDirty() bool
	IsEmpty() bool
	SelectionCount() int
	PrimaryIndex() int
}

// Frame is everything drawn in one render pass.
type Frame struct {
	Doc Document

	// Mode is the display name of the current mode.
	Mode        string
	CursorStyle backend.CursorStyle

	// Command line state, shown instead of the message while active.
	CommandActive bool
	Command       string
	CommandCursor int

	Message     string
	MessageType MessageType
}

// Options configures the renderer.
type Options struct {
	// ShowWelcome draws the welcome message on an empty, untitled buffer.
	ShowWelcome bool

	// Version appears in the welcome message.
	Version string
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowWelcome: true,
		Version:     "dev",
	}
}

// Rows below the text area: status bar and command line.
const chromeRows = 2

var (
	tildeStyle   = backend.DefaultStyle().WithForeground(backend.ColorBlue)
	welcomeStyle = backend.DefaultStyle().Bold()
)

// Renderer draws frames on a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
	status  *StatusLine
	frames  uint64
}

// New creates a renderer drawing on b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
		status:  NewStatusLine(),
	}
}

// TextAreaSize returns the size available for document text.
func (r *Renderer) TextAreaSize() viewport.Size {
	w, h := r.backend.Size()
	return viewport.Size{Width: max(w, 1), Height: max(h-chromeRows, 1)}
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// Render draws f and flushes it to the screen.
func (r *Renderer) Render(f Frame) {
	width, height := r.backend.Size()
	area := r.TextAreaSize()

	var snap *buffer.Snapshot
	r.backend.Clear()
	if f.Doc != nil {
		snap = f.Doc.Snapshot()
		r.renderText(snap, f.Doc.Offset(), area)
		if r.opts.ShowWelcome && f.Doc.IsEmpty() && f.Doc.Path() == "" {
			r.renderWelcome(area)
		}
	}

	r.status.Update(f, snap)
	r.status.RenderBar(r.backend, height-2, width)
	r.status.RenderCommandLine(r.backend, height-1, width)

	r.renderCursor(f, area, height-1)
	r.backend.Show()
	r.frames++
}

// renderText draws the visible lines, or ~ for rows past the end.
func (r *Renderer) renderText(snap *buffer.Snapshot, off cursor.Position, area viewport.Size) {
	for row := 0; row < area.Height; row++ {
		line, ok := snap.Line(off.Y + row)
		if !ok {
			r.backend.SetCell(0, row, backend.NewStyledCell('~', tildeStyle))
			continue
		}
		backend.DrawString(r.backend, 0, row, area.Width, displayText(line.Visible(), off.X), backend.DefaultStyle())
	}
}

// renderWelcome centres the welcome message a third of the way down.
func (r *Renderer) renderWelcome(area viewport.Size) {
	msg := fmt.Sprintf("REFLEX -- v%s", r.opts.Version)
	x := max((area.Width-backend.StringWidth(msg))/2, 0)
	backend.DrawString(r.backend, x, area.Height/3, area.Width, msg, welcomeStyle)
}

func (r *Renderer) renderCursor(f Frame, area viewport.Size, commandRow int) {
	if f.CommandActive {
		cmd := []rune(f.Command)
		pos := min(max(f.CommandCursor, 0), len(cmd))
		r.backend.SetCursorStyle(backend.CursorBar)
		r.backend.ShowCursor(1+backend.StringWidth(string(cmd[:pos])), commandRow)
		return
	}
	if f.Doc == nil {
		r.backend.HideCursor()
		return
	}

	row, col, ok := f.Doc.PrimaryScreenPosition()
	if !ok || col >= area.Width {
		r.backend.HideCursor()
		return
	}
	r.backend.SetCursorStyle(f.CursorStyle)
	r.backend.ShowCursor(col, row)
}

// displayText returns s as drawn from screen column skip onwards. Tabs
// and control characters become single spaces; a wide character cut by
// the left edge leaves spaces in its visible cells.
func displayText(s string, skip int) string {
	var sb strings.Builder
	col := 0
	for _, ch := range s {
		w := viewport.RuneCells(ch)
		if ch == '\t' || unicode.IsControl(ch) {
			ch = ' '
		}
		switch {
		case col >= skip:
			sb.WriteRune(ch)
		case col+w > skip:
			sb.WriteString(strings.Repeat(" ", col+w-skip))
		}
		col += w
	}
	return sb.String()
}
