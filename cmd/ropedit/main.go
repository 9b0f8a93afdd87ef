// Package main is the entry point for the ropedit editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/app"
	"github.com/dshills/ropedit/internal/config"
	"github.com/dshills/ropedit/internal/logging"
	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/renderer/highlight"
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
	logFile    string
	theme      string
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The terminal owns stderr while the editor runs.
	if settings.Log.File == "" {
		settings.Log.File = defaultLogFile()
	}
	_, closer, err := logging.Setup(logging.Config{
		Level:   settings.Log.Level,
		File:    settings.Log.File,
		Console: settings.Log.Console,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logging: %v\n", err)
		return 1
	}
	defer closer.Close()
	log.Info().Str("version", version).Strs("files", opts.files).Msg("starting")

	application, err := app.New(app.Options{Settings: &settings, Files: opts.files})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		log.Error().Err(err).Msg("editor stopped")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Info().Msg("exiting")
	return 0
}

// loadSettings reads the config file and the environment, then applies
// the command line overrides.
func loadSettings(opts options) (config.Settings, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}
	if err := settings.ApplyEnv(""); err != nil {
		return settings, err
	}

	if opts.logLevel != "" {
		settings.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		settings.Log.File = opts.logFile
	}
	if opts.theme != "" {
		settings.Theme = opts.theme
	}
	return settings, settings.Validate()
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ropedit", "ropedit.log")
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool
	var listThemes bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Log file (default in the user cache directory)")
	flag.StringVar(&opts.theme, "theme", "", "Color theme")
	flag.BoolVar(&listThemes, "themes", false, "List the available themes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ropedit - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ropedit [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ropedit                     Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  ropedit main.go util.go     Open files\n")
		fmt.Fprintf(os.Stderr, "  ropedit -theme monokai x.go Open with a chroma theme\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("ropedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if listThemes {
		for _, name := range highlight.ThemeNames() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
