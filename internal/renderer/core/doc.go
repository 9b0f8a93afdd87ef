// Package core provides the color and style values shared by the
// highlighter, the display list and the terminal backend.
package core
