package engine

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/vfs"
)

// Open reads path into a new buffer. The buffer is clean and counts as
// empty only when the file is zero-length.
func Open(path string, opts ...Option) (*FileBuffer, error) {
	fb := New(opts...)
	if err := fb.load(path); err != nil {
		return nil, err
	}
	return fb, nil
}

// Save writes the text to the buffer's file, keeping the file's
// permissions when it already exists. On failure the buffer stays dirty.
func (fb *FileBuffer) Save() error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.save()
}

// SaveAs binds the buffer to path and saves it there. The old file name
// is kept when the write fails.
func (fb *FileBuffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	old := fb.path
	fb.path = path
	if err := fb.save(); err != nil {
		fb.path = old
		return err
	}
	return nil
}

// Reload discards the text and reads the file again. Carets are clamped
// to the new content.
func (fb *FileBuffer) Reload() error {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.path == "" {
		return ErrNoPath
	}
	if err := fb.read(fb.path); err != nil {
		return err
	}
	fb.clampAll()
	return nil
}

// ChangedOnDisk reports whether the file's content differs from what the
// buffer last loaded or saved. Edits in the buffer do not count.
func (fb *FileBuffer) ChangedOnDisk() (bool, error) {
	fb.mu.RLock()
	path, saved := fb.path, fb.saved
	fb.mu.RUnlock()

	if path == "" {
		return false, ErrNoPath
	}
	data, err := fb.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return !bytes.Equal(data, saved.Bytes()), nil
}

func (fb *FileBuffer) load(path string) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.read(path)
}

func (fb *FileBuffer) read(path string) error {
	data, err := fb.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("open %s: %w", path, ErrInvalidEncoding)
	}

	fb.text = buffer.NewBufferFromBytes(data)
	fb.path = path
	fb.empty = len(data) == 0
	fb.saved = fb.text.Snapshot()
	return nil
}

func (fb *FileBuffer) save() error {
	if fb.path == "" {
		return ErrNoPath
	}
	snap := fb.text.Snapshot()
	mode := vfs.ModeOr(fb.fs, fb.path, vfs.DefaultFileMode)
	if err := fb.fs.WriteFile(fb.path, snap.Bytes(), mode); err != nil {
		return fmt.Errorf("save %s: %w", fb.path, err)
	}
	fb.saved = snap
	return nil
}
