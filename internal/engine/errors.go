package engine

import "errors"

// Errors returned by FileBuffer operations.
var (
	// ErrNoPath indicates a save was requested for a buffer with no file name.
	ErrNoPath = errors.New("no file name")

	// ErrInvalidEncoding indicates a file's content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)
