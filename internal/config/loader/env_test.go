package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("ROPEDIT_TAB_SIZE", "2")
	t.Setenv("ROPEDIT_THEME", "light")
	t.Setenv("ROPEDIT_LOG_LEVEL", "debug")
	t.Setenv("ROPEDIT_INDENT_WITH_SPACE", "yes")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "debug"},
		{"ui.theme", "light"},
		{"editor.tabSize", int64(2)},
		{"editor.indentWithSpace", true},
	}
	for _, tt := range tests {
		if val, ok := GetByPath(config, tt.path); !ok || val != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, val, val, tt.want)
		}
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("ROPEDIT_EDITOR_MAX_UNDO", "50")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := GetByPath(config, "editor.maxUndo"); !ok || val != int64(50) {
		t.Errorf("editor.maxUndo = %v, want 50", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("ROPEDIT_")

	tests := []struct {
		env      string
		expected string
	}{
		{"ROPEDIT_EDITOR_TAB_SIZE", "editor.tabSize"},
		{"ROPEDIT_UI_THEME", "ui.theme"},
		{"ROPEDIT_SIMPLE", "simple"},
		{"ROPEDIT_DEEP_NESTED_PATH", "deep.nestedPath"},
	}
	for _, tt := range tests {
		if got := loader.envToPath(tt.env); got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	loader := NewEnvLoader("ROPEDIT_")

	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"OFF", false},
		{"42", int64(42)},
		{"1", int64(1)},
		{"1.5", 1.5},
		{"monokai", "monokai"},
	}
	for _, tt := range tests {
		if got := loader.parseValue(tt.input); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.input, got, got, tt.want)
		}
	}
}
