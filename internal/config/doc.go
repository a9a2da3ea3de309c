// Package config loads the Reflex settings.
//
// Settings are read in layers, each overriding the one before:
//
//  1. Built-in defaults (Default)
//  2. The configuration file, TOML or YAML (~/.config/reflex/config.toml)
//  3. Environment variables prefixed with REFLEX_
//
// Command line flags are applied on top by the caller.
//
// # Settings
//
//	[logging]
//	level = "info"        # debug, info, warn, error
//	file = ""             # empty disables logging
//
//	[editor]
//	watch_files = true    # reload files changed by other programs
//	welcome = true        # show the banner on an empty buffer
//	scroll_off = 0        # context kept around the cursor
//
// # Environment
//
// REFLEX_LOG_LEVEL, REFLEX_LOG_FILE, REFLEX_WATCH_FILES, REFLEX_WELCOME and
// REFLEX_SCROLL_OFF set the matching setting. Any other REFLEX_SECTION_NAME
// variable sets section.name, e.g. REFLEX_EDITOR_SCROLL_OFF.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Editor.ScrollOff)
package config
