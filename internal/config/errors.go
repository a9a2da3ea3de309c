package config

import (
	"errors"
	"fmt"

	"github.com/dshills/reflex/internal/config/loader"
)

// ErrInvalidValue indicates a setting has the wrong type or an
// unacceptable value.
var ErrInvalidValue = errors.New("invalid setting value")

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a setting that was read but cannot be used.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "editor.scroll_off".
	Path    string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrInvalidValue.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}
