package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/ropedit/internal/config/loader"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("Load() of a missing file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[editor]
tabSize = 8
indentWithSpace = false
pageOverlap = 2

[ui]
theme = "monokai"

[ui.font]
advance = 8
lineHeight = 16

[files]
watch = false

[logging]
level = "debug"

[keys]
Save = ["Ctrl-S", "F2"]
Quit = "Ctrl-Q"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.TabSize = 8
	want.IndentWithSpace = false
	want.PageOverlap = 2
	want.Theme = "monokai"
	want.Font = FontSettings{Advance: 8, LineHeight: 16}
	want.Watch = false
	want.Log.Level = "debug"
	want.Keys = map[string][]string{
		"Save": {"Ctrl-S", "F2"},
		"Quit": {"Ctrl-Q"},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "editor:\n  tabSize: 2\nui:\n  theme: light\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.TabSize != 2 || s.Theme != "light" {
		t.Errorf("Load() = tabSize %d, theme %q, want 2, %q", s.TabSize, s.Theme, "light")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("type mismatch", func(t *testing.T) {
		path := writeConfig(t, "config.toml", "[editor]\ntabSize = \"four\"\n")
		_, err := Load(path)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Load() error = %v, want ErrTypeMismatch", err)
		}
		var terr *TypeError
		if !errors.As(err, &terr) || terr.Path != "editor.tabSize" {
			t.Errorf("Load() error = %v, want a TypeError for editor.tabSize", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		path := writeConfig(t, "config.toml", "[editor]\ntabSize = 0\n")
		_, err := Load(path)
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("Load() error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("syntax", func(t *testing.T) {
		path := writeConfig(t, "config.toml", "[editor\n")
		_, err := Load(path)
		var perr *loader.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Load() error = %v, want a ParseError", err)
		}
	})

	t.Run("format", func(t *testing.T) {
		_, err := Load("config.ini")
		if !errors.Is(err, loader.ErrUnsupportedFormat) {
			t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROPEDIT_TAB_SIZE", "3")
	t.Setenv("ROPEDIT_INDENT_WITH_SPACE", "false")
	t.Setenv("ROPEDIT_THEME", "light")
	t.Setenv("ROPEDIT_LOG_LEVEL", "warn")
	t.Setenv("ROPEDIT_EDITOR_MAX_UNDO", "50")

	s := Default()
	if err := s.ApplyEnv(""); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if s.TabSize != 3 || s.IndentWithSpace || s.Theme != "light" || s.Log.Level != "warn" || s.MaxUndo != 50 {
		t.Errorf("ApplyEnv() = %+v", s)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("ROPEDIT_TAB_SIZE", "wide")
	s := Default()
	if err := s.ApplyEnv(""); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ApplyEnv() error = %v, want ErrTypeMismatch", err)
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.TabSize = 64
	s.Font.LineHeight = 0
	s.Log.Level = "loud"

	err := s.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want a ValidationError", err)
	}
	for _, path := range []string{"editor.tabSize", "ui.font.lineHeight", "logging.level"} {
		if !containsPath(err, path) {
			t.Errorf("Validate() = %v, missing %s", err, path)
		}
	}
}

func containsPath(err error, path string) bool {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return false
	}
	for _, e := range joined.Unwrap() {
		var verr *ValidationError
		if errors.As(e, &verr) && verr.Path == path {
			return true
		}
	}
	return false
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultPath(), filepath.Join("/xdg", "ropedit", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
