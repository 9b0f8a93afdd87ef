package key

import (
	"strings"
	"unicode"
)

// Binding is a key press with its modifiers.
type Binding struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune bindings.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneBinding creates a binding for a character.
func NewRuneBinding(r rune, mods Modifier) Binding {
	return Binding{Key: KeyRune, Rune: r, Modifiers: mods}.Normalize()
}

// NewSpecialBinding creates a binding for a special key.
func NewSpecialBinding(k Key, mods Modifier) Binding {
	return Binding{Key: k, Modifiers: mods}
}

// Normalize returns the canonical form used for lookups: a character
// pressed with Ctrl, Alt or Meta is lowercase.
func (b Binding) Normalize() Binding {
	if b.Key == KeyRune && b.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
		b.Rune = unicode.ToLower(b.Rune)
	}
	return b
}

// IsRune returns true if this is a character binding.
func (b Binding) IsRune() bool {
	return b.Key == KeyRune && b.Rune != 0
}

// IsText reports whether the binding types a printable character, that is
// a character with at most Shift held.
func (b Binding) IsText() bool {
	return b.IsRune() && unicode.IsPrint(b.Rune) && !b.Modifiers.Has(ModCtrl|ModAlt|ModMeta)
}

// String returns the canonical specification, which Parse accepts.
func (b Binding) String() string {
	var name string
	switch {
	case b.Key != KeyRune:
		name = b.Key.String()
	case b.Rune == ' ':
		name = "Space"
	default:
		name = string(b.Rune)
	}
	if b.Modifiers == ModNone {
		return name
	}
	return strings.Join([]string{b.Modifiers.String(), name}, "-")
}
