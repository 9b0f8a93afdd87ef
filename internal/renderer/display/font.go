package display

import "strings"

// Font describes a monospace font.
type Font struct {
	name       string
	advance    int
	lineHeight int
}

// CellFont is the font of a character-cell surface: one unit per cell.
var CellFont = NewFont("cell", 1, 1)

// NewFont creates a font. Non-positive metrics are raised to 1.
func NewFont(name string, advance, lineHeight int) Font {
	return Font{name: name, advance: max(advance, 1), lineHeight: max(lineHeight, 1)}
}

// Name returns the font name.
func (f Font) Name() string {
	return f.name
}

// Advance returns the horizontal size of every character.
func (f Font) Advance() int {
	if f.advance <= 0 {
		return 1
	}
	return f.advance
}

// LineHeight returns the vertical size of a line.
func (f Font) LineHeight() int {
	if f.lineHeight <= 0 {
		return 1
	}
	return f.lineHeight
}

// Width returns the horizontal size of n characters.
func (f Font) Width(n int) int {
	return n * f.Advance()
}

// Font variant names used with SetFont.
const (
	FontRegular = "regular"
	fontBold    = "bold"
	fontItalic  = "italic"
	fontUnder   = "underline"
)

// VariantName returns the SetFont name of a style variant, such as
// "regular", "bold" or "bold-italic".
func VariantName(bold, italic, underline bool) string {
	var parts []string
	if bold {
		parts = append(parts, fontBold)
	}
	if italic {
		parts = append(parts, fontItalic)
	}
	if underline {
		parts = append(parts, fontUnder)
	}
	if len(parts) == 0 {
		return FontRegular
	}
	return strings.Join(parts, "-")
}

// ParseVariant reports the attributes named by a SetFont name. Unknown
// parts are ignored.
func ParseVariant(name string) (bold, italic, underline bool) {
	for _, part := range strings.Split(name, "-") {
		switch part {
		case fontBold:
			bold = true
		case fontItalic:
			italic = true
		case fontUnder:
			underline = true
		}
	}
	return bold, italic, underline
}
