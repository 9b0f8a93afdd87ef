// Package key defines key bindings and parses them from text.
//
// A Binding is a key with its modifiers. Bindings are written as a key
// name preceded by modifiers, separated by '-', '+' or a space:
//
//   - Simple keys: "a", "Enter", "PageDown", "F5"
//   - With modifiers: "Ctrl-S", "Shift-PageUp", "Ctrl+Shift+P"
//   - Keypad keys: "Keypad Enter", "Num-Up", "KP5"
//
// A separator written where a key is expected is the key itself, so
// "Ctrl--" is Ctrl with the minus key.
package key
