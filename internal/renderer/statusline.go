package renderer

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the status bar and the command/message line.
type StatusLine struct {
	mode     string
	filename string
	modified bool
	lines    int
	ending   buffer.LineEnding

	cursors int
	primary int

	commandActive bool
	command       string

	message     string
	messageType MessageType

	modeStyles map[string]backend.Style
}

// NewStatusLine creates a status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{
		mode:       "NORMAL",
		modeStyles: defaultModeStyles(),
	}
}

// defaultModeStyles returns the status bar style for each mode.
func defaultModeStyles() map[string]backend.Style {
	return map[string]backend.Style{
		"NORMAL":  backend.DefaultStyle().Reverse(),
		"INSERT":  backend.DefaultStyle().Reverse().Bold(),
		"VISUAL":  backend.DefaultStyle().Reverse().WithForeground(backend.ColorYellow),
		"COMMAND": backend.DefaultStyle().Reverse(),
	}
}

// Update copies the displayed state from f. snap is the text being drawn
// and may be nil when there is no document.
func (s *StatusLine) Update(f Frame, snap *buffer.Snapshot) {
	s.mode = f.Mode
	s.commandActive = f.CommandActive
	s.command = f.Command
	s.message = f.Message
	s.messageType = f.MessageType

	if f.Doc != nil {
		s.filename = f.Doc.Name()
		s.modified = f.Doc.IsDirty()
		s.cursors = f.Doc.SelectionCount()
		s.primary = f.Doc.PrimaryIndex()
	}
	if snap != nil {
		s.lines = snap.LineCount()
		s.ending = snap.LineEnding()
	}
}

// Text returns the status bar contents before padding.
func (s *StatusLine) Text() string {
	text := fmt.Sprintf(" %s %s", s.mode, s.filename)
	if s.modified {
		text += " (Dirty)"
	}
	text += fmt.Sprintf(" - %d lines", s.lines)
	if s.ending == buffer.LineEndingCRLF {
		text += " (" + s.ending.String() + ")"
	}
	if s.cursors > 1 {
		text += fmt.Sprintf(" [%d/%d]", s.primary+1, s.cursors)
	}
	return text
}

// RenderBar draws the status bar across row, padded to width.
func (s *StatusLine) RenderBar(b backend.Backend, row, width int) {
	style, ok := s.modeStyles[s.mode]
	if !ok {
		style = backend.DefaultStyle().Reverse()
	}
	text := runewidth.FillRight(runewidth.Truncate(s.Text(), width, ""), width)
	backend.DrawString(b, 0, row, width, text, style)
}

// RenderCommandLine draws the command being typed or the last message.
func (s *StatusLine) RenderCommandLine(b backend.Backend, row, width int) {
	if s.commandActive {
		backend.DrawString(b, 0, row, width, ":"+s.command, backend.DefaultStyle())
		return
	}
	style := backend.DefaultStyle()
	if s.messageType == MessageError {
		style = style.WithForeground(backend.ColorRed)
	}
	backend.DrawString(b, 0, row, width, s.message, style)
}
