package config

// LoggingConfig controls the log file.
type LoggingConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File is the log file path. Empty disables logging, since the
	// terminal is taken by the editor.
	File string `toml:"file"`
}

// EditorConfig controls editing behaviour.
type EditorConfig struct {
	// WatchFiles reloads or flags open files changed by other programs.
	WatchFiles bool `toml:"watch_files"`

	// Welcome shows the version banner on an empty, untitled buffer.
	Welcome bool `toml:"welcome"`

	// ScrollOff is the number of rows and columns kept between the
	// cursor and the edges of the screen.
	ScrollOff int `toml:"scroll_off"`
}

// logLevels are the accepted values of logging.level.
var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}
