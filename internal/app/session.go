package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/dshills/reflex/internal/engine"
	"github.com/dshills/reflex/internal/input/commandline"
	"github.com/dshills/reflex/internal/input/mode"
	"github.com/dshills/reflex/internal/renderer"
	"github.com/dshills/reflex/internal/renderer/backend"
	"github.com/dshills/reflex/internal/vfs"
	"github.com/dshills/reflex/internal/watcher"
)

// Options configures a Session.
type Options struct {
	// Backend is the terminal. Required.
	Backend backend.Backend

	// FS is where buffers are read from and written to. Defaults to the
	// operating system's file system.
	FS vfs.VFS

	// Logger defaults to NullLogger.
	Logger *Logger

	Renderer renderer.Options

	// WatchFiles reports changes other programs make to open files.
	WatchFiles bool

	// ScrollOff is the number of rows and columns kept between the
	// cursor and the edges of the text area.
	ScrollOff int
}

// fileWatcher is the part of watcher.Watcher the session uses.
type fileWatcher interface {
	Add(path string) error
	Remove(path string) error
	Close() error
}

// Session is one run of the editor: the open buffers, which one is
// shown, the mode, the command line and the status message.
//
// A Session is driven by a single goroutine. Other goroutines reach it
// only through PostInterrupt on the backend.
type Session struct {
	backend  backend.Backend
	renderer *renderer.Renderer
	fs       vfs.VFS
	log      *Logger

	buffers []*engine.FileBuffer
	current int

	modes   *mode.Machine
	cmdline *commandline.Line

	message     string
	messageType renderer.MessageType

	watchFiles bool
	watcher    fileWatcher
	scrollOff  int

	quit bool
}

// NewSession creates a session with no buffers.
func NewSession(opts Options) *Session {
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}

	s := &Session{
		backend:    opts.Backend,
		renderer:   renderer.New(opts.Backend, opts.Renderer),
		fs:         opts.FS,
		log:        opts.Logger.WithComponent("session"),
		modes:      mode.NewMachine(),
		cmdline:    commandline.New(),
		watchFiles: opts.WatchFiles,
		scrollOff:  opts.ScrollOff,
	}
	s.modes.OnChange(func(from, to mode.Mode) {
		s.log.Debug("mode %s -> %s", from, to)
	})
	return s
}

// Open opens each path in a new buffer and shows the last one opened. A
// path that does not exist yet gets an empty buffer bound to it. A path
// that cannot be read is skipped: the first failure goes to the status
// line and all of them are returned. A session left without buffers
// gets an untitled one.
func (s *Session) Open(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if _, err := s.openBuffer(p); err != nil {
			errs = append(errs, NewOperationError("open", p, err))
		}
	}
	if len(s.buffers) == 0 {
		s.addBuffer(engine.New(s.bufferOptions()...))
	}
	if len(errs) > 0 {
		s.fail(errs[0])
	}
	return errors.Join(errs...)
}

// Run draws the session and handles terminal events until the user
// quits. The terminal is restored before Run returns, also on panic.
func (s *Session) Run() (err error) {
	if err := s.backend.Init(); err != nil {
		return NewComponentError("terminal", "init", err)
	}
	defer s.backend.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic: %v", r)
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	if len(s.buffers) == 0 {
		if err := s.Open(); err != nil {
			return err
		}
	}
	s.startWatcher()
	defer s.stopWatcher()

	s.log.Info("session started with %d buffer(s)", len(s.buffers))
	s.shiftViewport()
	for !s.quit {
		s.Render()
		ev := s.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			break
		}
		s.HandleEvent(ev)
	}
	s.log.Info("session ended")
	return nil
}

// HandleEvent applies one terminal event.
func (s *Session) HandleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		s.handleKey(ev)
	case backend.EventResize:
		s.shiftViewport()
	case backend.EventInterrupt:
		if n, ok := ev.Data.(watcher.Notice); ok {
			s.handleNotice(n)
		}
	}
}

// Render draws the current state.
func (s *Session) Render() {
	s.renderer.Render(s.frame())
}

func (s *Session) frame() renderer.Frame {
	m := s.modes.Current()
	f := renderer.Frame{
		Mode:          m.DisplayName(),
		CursorStyle:   cursorStyle(m),
		CommandActive: m == mode.Command,
		Command:       s.cmdline.Text(),
		CommandCursor: s.cmdline.Cursor(),
		Message:       s.message,
		MessageType:   s.messageType,
	}
	if fb := s.Current(); fb != nil {
		f.Doc = fb
	}
	return f
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}

// Current returns the buffer on screen, or nil before Open.
func (s *Session) Current() *engine.FileBuffer {
	if len(s.buffers) == 0 {
		return nil
	}
	return s.buffers[s.current]
}

// Buffers returns the open buffers in the order they were opened.
func (s *Session) Buffers() []*engine.FileBuffer {
	out := make([]*engine.FileBuffer, len(s.buffers))
	copy(out, s.buffers)
	return out
}

// Mode returns the current mode.
func (s *Session) Mode() mode.Mode {
	return s.modes.Current()
}

// CommandLine returns the ex command line.
func (s *Session) CommandLine() *commandline.Line {
	return s.cmdline
}

// Message returns the status message and its type.
func (s *Session) Message() (string, renderer.MessageType) {
	return s.message, s.messageType
}

// Done reports whether the user asked to quit.
func (s *Session) Done() bool {
	return s.quit
}

func (s *Session) info(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageType = renderer.MessageInfo
}

func (s *Session) fail(err error) {
	s.message = err.Error()
	s.messageType = renderer.MessageError
}

func (s *Session) clearMessage() {
	s.message = ""
	s.messageType = renderer.MessageNone
}

// shiftViewport keeps the primary cursor of the current buffer on screen.
func (s *Session) shiftViewport() {
	if fb := s.Current(); fb != nil {
		fb.ShiftViewport(s.renderer.TextAreaSize())
	}
}

func (s *Session) bufferOptions(extra ...engine.Option) []engine.Option {
	opts := []engine.Option{
		engine.WithFS(s.fs),
		engine.WithScrollMargins(s.scrollOff, s.scrollOff),
	}
	return append(opts, extra...)
}

// openBuffer shows the buffer for path, reading it when it is not open
// yet.
func (s *Session) openBuffer(path string) (*engine.FileBuffer, error) {
	if i := s.findBuffer(path); i >= 0 {
		s.switchTo(i)
		return s.buffers[i], nil
	}

	var fb *engine.FileBuffer
	if s.fs.Exists(path) {
		var err error
		fb, err = engine.Open(path, s.bufferOptions()...)
		if err != nil {
			s.log.Warn("open failed: %v", err)
			return nil, err
		}
		s.log.WithField("lines", fb.LineCount()).Info("opened %s", path)
	} else {
		fb = engine.New(s.bufferOptions(engine.WithPath(path))...)
		s.log.Info("new file %s", path)
	}
	s.addBuffer(fb)
	s.watch(path)
	return fb, nil
}

func (s *Session) addBuffer(fb *engine.FileBuffer) {
	s.buffers = append(s.buffers, fb)
	s.switchTo(len(s.buffers) - 1)
}

func (s *Session) switchTo(i int) {
	s.current = i
	s.shiftViewport()
}

// findBuffer returns the index of the buffer bound to path, or -1.
func (s *Session) findBuffer(path string) int {
	want := s.absPath(path)
	for i, fb := range s.buffers {
		if fb.Path() != "" && s.absPath(fb.Path()) == want {
			return i
		}
	}
	return -1
}

func (s *Session) absPath(path string) string {
	abs, err := s.fs.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// dirtyBuffer returns the first modified buffer, current one first.
func (s *Session) dirtyBuffer() *engine.FileBuffer {
	if fb := s.Current(); fb != nil && fb.IsDirty() {
		return fb
	}
	for _, fb := range s.buffers {
		if fb.IsDirty() {
			return fb
		}
	}
	return nil
}

func (s *Session) startWatcher() {
	if !s.watchFiles || s.watcher != nil {
		return
	}
	log := s.log.WithComponent("watcher")
	w, err := watcher.New(s.backend, watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		s.fail(NewComponentError("watcher", "start", err))
		log.Error("start: %v", err)
		return
	}
	s.watcher = w
	for _, fb := range s.buffers {
		if fb.Path() != "" {
			s.watch(fb.Path())
		}
	}
}

func (s *Session) stopWatcher() {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Close(); err != nil {
		s.log.Warn("watcher close: %v", err)
	}
	s.watcher = nil
}

func (s *Session) watch(path string) {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Add(s.absPath(path)); err != nil {
		s.log.WithComponent("watcher").Warn("%v", err)
	}
}

func (s *Session) unwatch(path string) {
	if s.watcher == nil || path == "" {
		return
	}
	if err := s.watcher.Remove(s.absPath(path)); err != nil {
		s.log.WithComponent("watcher").Warn("%v", err)
	}
}

// handleNotice reacts to another program changing an open file. Clean
// buffers follow the file; modified ones only get a warning.
func (s *Session) handleNotice(n watcher.Notice) {
	i := s.findBuffer(n.Path)
	if i < 0 {
		return
	}
	fb := s.buffers[i]
	log := s.log.WithField("op", n.Op)

	if n.Gone() {
		log.Info("%s removed on disk", n.Path)
		s.fail(NewOperationError("watch", fb.Name(), errors.New("file removed on disk")))
		return
	}

	changed, err := fb.ChangedOnDisk()
	if err != nil || !changed {
		return
	}
	if fb.IsDirty() {
		log.Info("%s changed on disk, buffer modified", n.Path)
		s.fail(NewOperationError("watch", fb.Name(), errors.New("file changed on disk")).
			WithContext(":e! to reload"))
		return
	}
	if err := fb.Reload(); err != nil {
		log.Warn("reload %s: %v", n.Path, err)
		s.fail(NewOperationError("reload", fb.Name(), err))
		return
	}
	log.Info("reloaded %s", n.Path)
	if i == s.current {
		s.shiftViewport()
	}
	s.info("%q reloaded, %dL", fb.Name(), fb.LineCount())
}
