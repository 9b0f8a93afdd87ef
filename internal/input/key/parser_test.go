package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Binding
	}{
		{"a", Binding{Key: KeyRune, Rune: 'a'}},
		{"A", Binding{Key: KeyRune, Rune: 'A'}},
		{"Ctrl-S", Binding{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"ctrl+shift+p", Binding{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl | ModShift}},
		{"Ctrl--", Binding{Key: KeyRune, Rune: '-', Modifiers: ModCtrl}},
		{"Ctrl-+", Binding{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"Space", Binding{Key: KeyRune, Rune: ' '}},
		{"Return", Binding{Key: KeyEnter}},
		{"Keypad Enter", Binding{Key: KeyKPEnter}},
		{"KP5", Binding{Key: KeyKP5}},
		{"Num-Up", Binding{Key: KeyUp}},
		{"Shift-Num-Up", Binding{Key: KeyUp, Modifiers: ModShift}},
		{"Shift-PageDown", Binding{Key: KeyPageDown, Modifiers: ModShift}},
		{"  End  ", Binding{Key: KeyEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper-S", ErrInvalidSpec},
		{"Ctrl-Banana", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"shift+ctrl+END", "Ctrl-Shift-End"},
		{"Ctrl-X", "Ctrl-x"},
		{"Shift-Num-Down", "Shift-Down"},
		{"space", "Space"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Fatalf("NormalizeSpec(%q) error = %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() of an invalid spec should panic")
		}
	}()
	MustParse("Nope-Nope")
}
