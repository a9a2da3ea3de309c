package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/reflex/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "REFLEX_"

// Config holds the editor settings.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Editor  EditorConfig  `toml:"editor"`

	// Path is the configuration file that was read, or "" when none was
	// found.
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			WatchFiles: true,
			Welcome:    true,
		},
	}
}

// DefaultPath returns the user configuration file,
// $XDG_CONFIG_HOME/reflex/config.toml or ~/.config/reflex/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reflex", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "reflex", "config.toml")
}

// Options configures LoadWith.
type Options struct {
	// Path is the configuration file. A ".yaml" or ".yml" extension
	// selects YAML, anything else TOML. Empty skips the file layer.
	Path string

	// FS reads the file. Nil uses the operating system.
	FS loader.FileSystem

	// EnvPrefix overrides EnvPrefix.
	EnvPrefix string
}

// Load reads the settings from path and the environment on top of the
// defaults.
func Load(path string) (Config, error) {
	return LoadWith(Options{Path: path})
}

// LoadWith reads the settings in layers: defaults, then the file, then
// environment variables. A missing file is not an error.
func LoadWith(opts Options) (Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = EnvPrefix
	}

	var file map[string]any
	if opts.Path != "" {
		var err error
		file, err = loader.ForPath(fsys, opts.Path).Load()
		if err != nil {
			return Config{}, err
		}
	}

	env, err := loader.NewEnvLoader(prefix).Load()
	if err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	merged := loader.DeepMerge(loader.Clone(file), env)

	cfg := Default()
	if err := decode(merged, &cfg); err != nil {
		return Config{}, err
	}
	if file != nil {
		cfg.Path = opts.Path
	}
	cfg.Logging.File = expandPath(cfg.Logging.File)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have a restricted range.
func (c Config) Validate() error {
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		return &ValidationError{
			Path:    "logging.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Logging.Level,
		}
	}
	if c.Editor.ScrollOff < 0 {
		return &ValidationError{
			Path:    "editor.scroll_off",
			Message: "must not be negative",
			Value:   c.Editor.ScrollOff,
		}
	}
	return nil
}

// decode applies the merged map over cfg. Keys missing from the map keep
// their current values.
func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// expandPath expands environment variables and a leading "~/".
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, rest)
		}
	}
	return p
}
