// Package main is the entry point for the Reflex editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/reflex/internal/app"
	"github.com/dshills/reflex/internal/config"
	"github.com/dshills/reflex/internal/renderer"
	"github.com/dshills/reflex/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: reflex must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, closer, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	// Create terminal backend
	tty, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	session := app.NewSession(app.Options{
		Backend:    tty,
		Logger:     logger,
		Renderer:   rendererOptions(cfg.Editor),
		WatchFiles: cfg.Editor.WatchFiles,
		ScrollOff:  cfg.Editor.ScrollOff,
	})
	if cfg.Path != "" {
		logger.Info("config loaded from %s", cfg.Path)
	}

	if err := session.Open(opts.files...); err != nil {
		logger.Warn("%v", err)
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		<-signals
		tty.Shutdown()
	}()

	if err := session.Run(); err != nil {
		logger.Error("session ended: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func rendererOptions(cfg config.EditorConfig) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.ShowWelcome = cfg.Welcome
	opts.Version = version
	return opts
}

// newLogger opens the configured log file. Without one, logs are discarded.
func newLogger(cfg config.LoggingConfig) (*app.Logger, io.Closer, error) {
	if cfg.File == "" {
		return app.NullLogger, io.NopCloser(nil), nil
	}
	logger, closer, err := app.NewFileLogger(cfg.File, app.ParseLogLevel(cfg.Level))
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger, closer, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Reflex - modal terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: reflex [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reflex                      Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  reflex main.go              Open a file\n")
		fmt.Fprintf(os.Stderr, "  reflex a.txt b.txt          Open several files (:bn, :bp to switch)\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Reflex %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	// Remaining arguments are files to open
	opts.files = flag.Args()

	return opts
}
