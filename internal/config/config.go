package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dshills/ropedit/internal/config/loader"
)

// Settings holds every user setting of the editor.
type Settings struct {
	// TabSize is the distance between tab stops in columns.
	TabSize int

	// IndentWithSpace makes Tab insert spaces up to the next tab stop.
	IndentWithSpace bool

	// MaxUndo caps the undo history of a view. 0 selects the default.
	MaxUndo int

	// PageOverlap is the number of lines kept visible across a page move.
	PageOverlap int

	// Theme names the color theme.
	Theme string

	// Font holds the character metrics of the drawing surface.
	Font FontSettings

	// Watch reports external changes to open files.
	Watch bool

	// Log configures logging.
	Log LogSettings

	// Keys maps command IDs to key specifications. Listed commands get
	// exactly these keys instead of their defaults.
	Keys map[string][]string
}

// FontSettings holds monospace character metrics.
type FontSettings struct {
	Advance    int
	LineHeight int
}

// LogSettings configures the logger.
type LogSettings struct {
	// Level is a zerolog level name.
	Level string
	// File is the log file. Empty logs to stderr.
	File string
	// Console selects human readable output instead of JSON.
	Console bool
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TabSize:         4,
		IndentWithSpace: true,
		MaxUndo:         1000,
		Theme:           "default-dark",
		Font:            FontSettings{Advance: 1, LineHeight: 1},
		Watch:           true,
		Log:             LogSettings{Level: "info"},
	}
}

// DefaultPath returns the path of the user config file,
// $XDG_CONFIG_HOME/ropedit/config.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(dir, "ropedit", "config.toml")
}

// Load returns the defaults overridden by the file at path. A missing file
// yields the defaults. The format follows the file extension.
func Load(path string) (Settings, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys loader.FileSystem, path string) (Settings, error) {
	s := Default()
	l, err := loader.ForPath(fsys, path)
	if err != nil {
		return s, err
	}
	data, err := l.Load()
	if err != nil {
		return s, err
	}
	if err := s.Apply(data); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, s.Validate()
}

// ApplyEnv overrides settings from environment variables such as
// ROPEDIT_TAB_SIZE. An empty prefix selects loader.DefaultEnvPrefix.
func (s *Settings) ApplyEnv(prefix string) error {
	if prefix == "" {
		prefix = loader.DefaultEnvPrefix
	}
	data, err := loader.NewEnvLoader(prefix).Load()
	if err != nil {
		return err
	}
	if err := s.Apply(data); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return s.Validate()
}

// Apply overrides settings from a configuration map. Unknown keys are
// ignored; known keys with a wrong type fail with a TypeError.
func (s *Settings) Apply(data map[string]any) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	collect(applyInt(data, "editor.tabSize", &s.TabSize))
	collect(applyBool(data, "editor.indentWithSpace", &s.IndentWithSpace))
	collect(applyInt(data, "editor.maxUndo", &s.MaxUndo))
	collect(applyInt(data, "editor.pageOverlap", &s.PageOverlap))
	collect(applyString(data, "ui.theme", &s.Theme))
	collect(applyInt(data, "ui.font.advance", &s.Font.Advance))
	collect(applyInt(data, "ui.font.lineHeight", &s.Font.LineHeight))
	collect(applyBool(data, "files.watch", &s.Watch))
	collect(applyString(data, "logging.level", &s.Log.Level))
	collect(applyString(data, "logging.file", &s.Log.File))
	collect(applyBool(data, "logging.console", &s.Log.Console))
	collect(s.applyKeys(data))
	return errors.Join(errs...)
}

func (s *Settings) applyKeys(data map[string]any) error {
	v, ok := loader.GetByPath(data, "keys")
	if !ok {
		return nil
	}
	table, ok := v.(map[string]any)
	if !ok {
		return &TypeError{Path: "keys", Expected: "table", Actual: fmt.Sprintf("%T", v)}
	}
	if s.Keys == nil {
		s.Keys = make(map[string][]string, len(table))
	}
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		specs, err := toStrings("keys."+id, table[id])
		if err != nil {
			return err
		}
		s.Keys[id] = specs
	}
	return nil
}

func toStrings(path string, v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", item)}
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, &TypeError{Path: path, Expected: "string list", Actual: fmt.Sprintf("%T", v)}
	}
}

func applyInt(data map[string]any, path string, dst *int) error {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case float64:
		if n != float64(int(n)) {
			return &TypeError{Path: path, Expected: "integer", Actual: "float"}
		}
		*dst = int(n)
	default:
		return &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
	}
	return nil
}

func applyBool(data map[string]any, path string, dst *bool) error {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
	}
	*dst = b
	return nil
}

func applyString(data map[string]any, path string, dst *string) error {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return nil
	}
	switch str := v.(type) {
	case string:
		*dst = str
	case int64, float64, bool:
		// Environment values are typed by their look.
		*dst = fmt.Sprint(str)
	default:
		return &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", v)}
	}
	return nil
}

// Validate checks the settings and returns every problem found.
func (s *Settings) Validate() error {
	var errs []error
	outOfRange := func(path string, v any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v, Code: ErrCodeOutOfRange})
	}
	if s.TabSize < 1 || s.TabSize > 32 {
		outOfRange("editor.tabSize", s.TabSize, "must be between 1 and 32")
	}
	if s.MaxUndo < 0 {
		outOfRange("editor.maxUndo", s.MaxUndo, "must not be negative")
	}
	if s.PageOverlap < 0 {
		outOfRange("editor.pageOverlap", s.PageOverlap, "must not be negative")
	}
	if s.Font.Advance < 1 {
		outOfRange("ui.font.advance", s.Font.Advance, "must be positive")
	}
	if s.Font.LineHeight < 1 {
		outOfRange("ui.font.lineHeight", s.Font.LineHeight, "must be positive")
	}
	if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "unknown level",
			Value:   s.Log.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}
	return errors.Join(errs...)
}
