package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification such as "Ctrl-S", "Shift-PageUp" or
// "Keypad Enter" into a Binding.
func Parse(spec string) (Binding, error) {
	parts := splitSpec(strings.TrimSpace(spec))
	if len(parts) == 0 {
		return Binding{}, ErrEmptySpec
	}

	var mods Modifier
	keypad := false
	for _, p := range parts[:len(parts)-1] {
		switch lp := strings.ToLower(p); lp {
		case "num", "keypad", "kp":
			keypad = true
		default:
			mod := ModifierFromName(lp)
			if mod == ModNone {
				return Binding{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
			}
			mods = mods.With(mod)
		}
	}
	return parseKey(parts[len(parts)-1], mods, keypad)
}

// splitSpec splits on '-', '+' and spaces. A separator with no pending
// name before it is a key of its own.
func splitSpec(spec string) []string {
	var parts []string
	var cur strings.Builder
	for _, r := range spec {
		if r == '-' || r == '+' || r == ' ' {
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			} else if r != ' ' {
				parts = append(parts, string(r))
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func parseKey(name string, mods Modifier, keypad bool) (Binding, error) {
	lower := strings.ToLower(name)
	if keypad {
		if k, ok := keypadKeys[lower]; ok {
			return NewSpecialBinding(k, mods), nil
		}
		// Keypad navigation keys arrive as the plain keys.
	}
	if lower == "space" {
		return NewRuneBinding(' ', mods), nil
	}
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialBinding(k, mods), nil
	}
	if runes := []rune(name); len(runes) == 1 {
		return NewRuneBinding(runes[0], mods), nil
	}
	return Binding{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Binding {
	b, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return b
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	b, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
