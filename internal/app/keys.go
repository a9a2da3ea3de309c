package app

import (
	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/input/mode"
	"github.com/dshills/reflex/internal/renderer/backend"
)

// arrows maps arrow keys to cursor motions.
var arrows = map[backend.Key]cursor.Direction{
	backend.KeyUp:    cursor.Up,
	backend.KeyDown:  cursor.Down,
	backend.KeyLeft:  cursor.Left,
	backend.KeyRight: cursor.Right,
}

// handleKey routes a key to the handler of the current mode.
func (s *Session) handleKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		s.fire(mode.TriggerEscape)
		s.cmdline.Reset()
		return
	case backend.KeyCtrlS:
		s.execute("w")
		return
	case backend.KeyCtrlQ:
		s.execute("q")
		return
	}

	if s.Current() == nil {
		return
	}
	switch s.modes.Current() {
	case mode.Normal, mode.Visual:
		s.normalKey(ev)
	case mode.Insert:
		s.insertKey(ev)
	case mode.Command:
		s.commandKey(ev)
	}
}

func (s *Session) fire(t mode.Trigger) bool {
	_, ok := s.modes.Fire(t)
	return ok
}

func (s *Session) normalKey(ev backend.Event) {
	fb := s.Current()

	if dir, ok := arrows[ev.Key]; ok {
		fb.MoveCursors(dir)
		s.shiftViewport()
		return
	}
	if ev.Key != backend.KeyRune {
		return
	}

	switch ev.Rune {
	case ':':
		if s.fire(mode.TriggerCommand) {
			s.cmdline.Reset()
			s.clearMessage()
		}
	case 'i':
		s.fire(mode.TriggerInsert)
	case 'v':
		s.fire(mode.TriggerVisual)
	case 'C':
		fb.AddCursorBelow()
		s.shiftViewport()
	case ',':
		fb.ClearSecondarySelections()
		s.shiftViewport()
	}
}

func (s *Session) insertKey(ev backend.Event) {
	fb := s.Current()

	switch ev.Key {
	case backend.KeyRune:
		fb.Insert(ev.Rune)
	case backend.KeyEnter:
		fb.Insert('\n')
	case backend.KeyTab:
		fb.Insert('\t')
	case backend.KeyBackspace:
		fb.Delete(true)
	case backend.KeyDelete:
		fb.Delete(false)
	default:
		dir, ok := arrows[ev.Key]
		if !ok {
			return
		}
		fb.MoveCursors(dir)
	}
	s.shiftViewport()
}

func (s *Session) commandKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		s.cmdline.Insert(ev.Rune)
	case backend.KeyBackspace:
		// Backspace on an empty line leaves command mode.
		if s.cmdline.Text() == "" {
			s.fire(mode.TriggerEscape)
			return
		}
		s.cmdline.Backspace()
	case backend.KeyDelete:
		s.cmdline.Delete()
	case backend.KeyLeft:
		s.cmdline.Left()
	case backend.KeyRight:
		s.cmdline.Right()
	case backend.KeyHome:
		s.cmdline.Home()
	case backend.KeyEnd:
		s.cmdline.End()
	case backend.KeyUp:
		s.cmdline.HistoryPrev()
	case backend.KeyDown:
		s.cmdline.HistoryNext()
	case backend.KeyEnter:
		text := s.cmdline.Submit()
		s.fire(mode.TriggerExecute)
		s.execute(text)
	}
}
