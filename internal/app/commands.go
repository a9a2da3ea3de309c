package app

import (
	"errors"
	"strings"

	"github.com/dshills/reflex/internal/engine"
)

// command is a parsed ex command line such as "w! notes.txt".
type command struct {
	name string
	bang bool
	arg  string
}

func parseCommand(text string) command {
	text = strings.TrimSpace(text)
	name, arg, _ := strings.Cut(text, " ")
	c := command{name: name, arg: strings.TrimSpace(arg)}
	if strings.HasSuffix(c.name, "!") {
		c.name = strings.TrimSuffix(c.name, "!")
		c.bang = true
	}
	return c
}

type commandFunc func(s *Session, c command) error

// commands maps every accepted name, short and long, to its handler.
var commands = map[string]commandFunc{
	"q":         cmdQuit,
	"quit":      cmdQuit,
	"w":         cmdWrite,
	"write":     cmdWrite,
	"wq":        cmdWriteQuit,
	"x":         cmdExit,
	"xit":       cmdExit,
	"e":         cmdEdit,
	"edit":      cmdEdit,
	"bn":        cmdBufferNext,
	"bnext":     cmdBufferNext,
	"bp":        cmdBufferPrev,
	"bprevious": cmdBufferPrev,
}

// Execute runs an ex command line. The outcome is also shown as the
// status message.
func (s *Session) Execute(text string) error {
	return s.execute(text)
}

func (s *Session) execute(text string) error {
	c := parseCommand(text)
	if c.name == "" {
		return nil
	}
	if len(s.buffers) == 0 {
		_ = s.Open()
	}

	fn, ok := commands[c.name]
	if !ok {
		err := NewOperationError(c.name, "", ErrUnknownCommand)
		s.fail(err)
		return err
	}

	log := s.log.WithField("command", strings.TrimSpace(text))
	err := fn(s, c)
	switch {
	case errors.Is(err, ErrQuit):
		log.Info("quit")
		s.quit = true
		return nil
	case err != nil:
		log.Warn("failed: %v", err)
		s.fail(err)
	default:
		log.Debug("done")
	}
	return err
}

func cmdQuit(s *Session, c command) error {
	if !c.bang {
		if fb := s.dirtyBuffer(); fb != nil {
			return NewOperationError("quit", fb.Name(), ErrUnsavedChanges).
				WithContext("add ! to override")
		}
	}
	return ErrQuit
}

func cmdWrite(s *Session, c command) error {
	fb := s.Current()
	if c.arg == "" {
		if err := fb.Save(); err != nil {
			return NewOperationError("write", fb.Name(), err)
		}
	} else {
		old := fb.Path()
		if err := fb.SaveAs(c.arg); err != nil {
			return NewOperationError("write", c.arg, err)
		}
		if old != fb.Path() {
			s.unwatch(old)
			s.watch(fb.Path())
		}
	}
	s.log.WithField("lines", fb.LineCount()).Info("wrote %s", fb.Path())
	s.info("%q %dL written", fb.Name(), fb.LineCount())
	return nil
}

func cmdWriteQuit(s *Session, c command) error {
	if err := cmdWrite(s, command{name: "w", arg: c.arg}); err != nil {
		return err
	}
	return cmdQuit(s, command{name: "q", bang: c.bang})
}

// cmdExit is wq that only writes a modified buffer.
func cmdExit(s *Session, c command) error {
	if s.Current().IsDirty() || c.arg != "" {
		if err := cmdWrite(s, command{name: "w", arg: c.arg}); err != nil {
			return err
		}
	}
	return cmdQuit(s, command{name: "q", bang: c.bang})
}

func cmdEdit(s *Session, c command) error {
	if c.arg == "" {
		return reloadCurrent(s, c.bang)
	}

	fb, err := s.openBuffer(c.arg)
	if err != nil {
		return NewOperationError("edit", c.arg, err)
	}
	if fb.IsEmpty() && !s.fs.Exists(c.arg) {
		s.info("%q [New]", fb.Name())
		return nil
	}
	s.info("%q %dL", fb.Name(), fb.LineCount())
	return nil
}

// reloadCurrent rereads the current file. Without force a modified
// buffer is left alone.
func reloadCurrent(s *Session, force bool) error {
	fb := s.Current()
	if fb.Path() == "" {
		return NewOperationError("edit", fb.Name(), engine.ErrNoPath)
	}
	if fb.IsDirty() && !force {
		return NewOperationError("edit", fb.Name(), ErrUnsavedChanges).
			WithContext("add ! to override")
	}
	if err := fb.Reload(); err != nil {
		return NewOperationError("edit", fb.Name(), err)
	}
	s.shiftViewport()
	s.log.Info("reloaded %s", fb.Path())
	s.info("%q %dL", fb.Name(), fb.LineCount())
	return nil
}

func cmdBufferNext(s *Session, _ command) error {
	s.cycle(1)
	return nil
}

func cmdBufferPrev(s *Session, _ command) error {
	s.cycle(-1)
	return nil
}

func (s *Session) cycle(step int) {
	n := len(s.buffers)
	s.switchTo(((s.current+step)%n + n) % n)
	fb := s.Current()
	s.info("%q %dL", fb.Name(), fb.LineCount())
}
