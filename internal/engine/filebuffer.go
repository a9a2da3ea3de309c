package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/renderer/viewport"
	"github.com/dshills/reflex/internal/vfs"
)

// Default viewport size used until the first ShiftViewport call.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// FileBuffer is one open document: its text, the file it belongs to,
// the selections editing it and the part of it on screen.
//
// FileBuffer is safe for concurrent use. The editor drives it from a
// single event loop; the lock only guards readers on other goroutines.
type FileBuffer struct {
	mu sync.RWMutex

	id   string
	path string
	fs   vfs.VFS

	text    *buffer.Buffer
	cursors *cursor.Set
	view    *viewport.Viewport

	// empty is set until the first insert, or when the file was zero-length.
	empty bool

	// saved is the text as of the last load or save. The buffer is dirty
	// while its revision differs from saved's.
	saved *buffer.Snapshot
}

// New creates an empty, untitled buffer with one caret at the origin.
func New(opts ...Option) *FileBuffer {
	fb := &FileBuffer{
		id:      uuid.NewString(),
		fs:      vfs.NewOSFS(),
		text:    buffer.NewBuffer(),
		cursors: cursor.NewSet(cursor.NewCaret(cursor.Position{})),
		view:    viewport.NewViewport(DefaultWidth, DefaultHeight),
		empty:   true,
	}
	for _, opt := range opts {
		opt(fb)
	}
	fb.saved = fb.text.Snapshot()
	return fb
}

// ID returns the buffer's unique identifier.
func (fb *FileBuffer) ID() string {
	return fb.id
}

// Path returns the file name the buffer saves to, or "" when untitled.
func (fb *FileBuffer) Path() string {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.path
}

// Name returns the base name of the file, or "[No Name]".
func (fb *FileBuffer) Name() string {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	if fb.path == "" {
		return "[No Name]"
	}
	return fb.fs.Base(fb.path)
}

// FS returns the file system the buffer uses.
func (fb *FileBuffer) FS() vfs.VFS {
	return fb.fs
}

// IsEmpty reports whether nothing has been typed into a buffer that
// started empty.
func (fb *FileBuffer) IsEmpty() bool {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.empty
}

// IsDirty reports whether the text changed since the last load or save.
func (fb *FileBuffer) IsDirty() bool {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.text.RevisionID() != fb.saved.RevisionID()
}

// Text returns the whole document.
func (fb *FileBuffer) Text() string {
	return fb.buf().Text()
}

// LineCount returns the number of lines in the document.
func (fb *FileBuffer) LineCount() int {
	return fb.buf().LineCount()
}

// Line returns line i including its terminator.
func (fb *FileBuffer) Line(i int) (buffer.LineView, bool) {
	return fb.buf().Line(i)
}

// Snapshot returns an immutable view of the text for rendering.
func (fb *FileBuffer) Snapshot() *buffer.Snapshot {
	return fb.buf().Snapshot()
}

// Primary returns the primary selection.
func (fb *FileBuffer) Primary() cursor.Selection {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.cursors.Primary()
}

// PrimaryIndex returns the index of the primary selection.
func (fb *FileBuffer) PrimaryIndex() int {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.cursors.PrimaryIndex()
}

// Selections returns a copy of all selections in insertion order.
func (fb *FileBuffer) Selections() []cursor.Selection {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.cursors.All()
}

// SelectionCount returns the number of selections.
func (fb *FileBuffer) SelectionCount() int {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.cursors.Count()
}

// buf returns the current text storage; Open and Reload replace it.
func (fb *FileBuffer) buf() *buffer.Buffer {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.text
}
