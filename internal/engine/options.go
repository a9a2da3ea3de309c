package engine

import (
	"github.com/dshills/reflex/internal/engine/buffer"
	"github.com/dshills/reflex/internal/vfs"
)

// Option configures a FileBuffer during creation.
type Option func(*FileBuffer)

// WithFS sets the file system the buffer is loaded from and saved to.
func WithFS(fs vfs.VFS) Option {
	return func(fb *FileBuffer) {
		if fs != nil {
			fb.fs = fs
		}
	}
}

// WithPath binds the buffer to a file name without reading it. Use it for
// files that do not exist yet; the first save creates them.
func WithPath(path string) Option {
	return func(fb *FileBuffer) {
		fb.path = path
	}
}

// WithContent sets the initial text. The buffer is not dirty afterwards.
func WithContent(content string) Option {
	return func(fb *FileBuffer) {
		fb.text = buffer.NewBufferFromString(content)
		fb.empty = content == ""
	}
}

// WithScrollMargins keeps the primary cursor this many rows and columns
// away from the viewport edges when scrolling.
func WithScrollMargins(vertical, horizontal int) Option {
	return func(fb *FileBuffer) {
		fb.view.SetMargins(vertical, horizontal)
	}
}
