// Package vfs provides the file system abstraction buffers are loaded
// from and saved to.
//
// OSFS talks to the operating system. MemFS keeps everything in memory
// and is used by tests.
package vfs

import (
	"io/fs"
	"time"
)

// VFS is the set of file operations the editor needs.
type VFS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it with perm if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Abs returns the absolute form of path.
	Abs(path string) (string, error)

	// Base returns the last element of path.
	Base(path string) string

	// Exists reports whether path exists.
	Exists(path string) bool
}

// DefaultFileMode is the mode given to files that do not exist yet.
const DefaultFileMode fs.FileMode = 0o644

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path, name string, size int64, mode fs.FileMode, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{path: path, name: name, size: size, mode: mode, modTime: modTime, isDir: isDir}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }

// ModeOr returns the permission bits of the file at path, or def when it
// cannot be statted.
func ModeOr(v VFS, path string, def fs.FileMode) fs.FileMode {
	info, err := v.Stat(path)
	if err != nil || info.IsDir() {
		return def
	}
	return info.Mode().Perm()
}
