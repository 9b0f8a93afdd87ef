package highlight

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/ropedit/internal/renderer/core"
)

// DefaultThemeName is the theme used when none is configured.
const DefaultThemeName = "default-dark"

// Theme maps token classes to styles.
type Theme struct {
	Name string

	Background    core.Color
	Foreground    core.Color
	Selection     core.Color
	Cursor        core.Color
	LineHighlight core.Color

	// Tokens holds overrides per class; missing classes use Default.
	Tokens map[TokenType]core.Style
}

// Default returns the style of unclassified text.
func (t *Theme) Default() core.Style {
	return core.NewStyle(t.Foreground)
}

// StyleFor returns the style of a token class.
func (t *Theme) StyleFor(typ TokenType) core.Style {
	if s, ok := t.Tokens[typ]; ok {
		return t.Default().Merge(s)
	}
	return t.Default()
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	rgb := core.ColorFromRGB
	return &Theme{
		Name:          DefaultThemeName,
		Background:    rgb(30, 30, 30),
		Foreground:    rgb(212, 212, 212),
		Selection:     rgb(38, 79, 120),
		Cursor:        rgb(174, 175, 173),
		LineHighlight: rgb(42, 45, 46),
		Tokens: map[TokenType]core.Style{
			TokenComment:     core.NewStyle(rgb(106, 153, 85)).Italic(),
			TokenString:      core.NewStyle(rgb(206, 145, 120)),
			TokenEscape:      core.NewStyle(rgb(215, 186, 125)),
			TokenNumber:      core.NewStyle(rgb(181, 206, 168)),
			TokenKeyword:     core.NewStyle(rgb(197, 134, 192)),
			TokenDeclaration: core.NewStyle(rgb(86, 156, 214)),
			TokenConstant:    core.NewStyle(rgb(86, 156, 214)),
			TokenTypeName:    core.NewStyle(rgb(78, 201, 176)),
			TokenBuiltin:     core.NewStyle(rgb(220, 220, 170)),
			TokenFunction:    core.NewStyle(rgb(220, 220, 170)),
			TokenMeta:        core.NewStyle(rgb(155, 155, 155)),
			TokenHeading:     core.NewStyle(rgb(86, 156, 214)).Bold(),
			TokenEmphasis:    core.NewStyle(rgb(212, 212, 212)).Italic(),
			TokenStrong:      core.NewStyle(rgb(212, 212, 212)).Bold(),
			TokenCode:        core.NewStyle(rgb(206, 145, 120)),
			TokenLink:        core.NewStyle(rgb(78, 148, 206)).Underline(),
			TokenError:       core.NewStyle(rgb(244, 71, 71)).Bold(),
		},
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() *Theme {
	rgb := core.ColorFromRGB
	return &Theme{
		Name:          "light",
		Background:    rgb(255, 255, 255),
		Foreground:    rgb(36, 41, 46),
		Selection:     rgb(173, 214, 255),
		Cursor:        rgb(0, 0, 0),
		LineHighlight: rgb(245, 245, 245),
		Tokens: map[TokenType]core.Style{
			TokenComment:     core.NewStyle(rgb(106, 115, 125)).Italic(),
			TokenString:      core.NewStyle(rgb(3, 47, 98)),
			TokenEscape:      core.NewStyle(rgb(0, 92, 197)),
			TokenNumber:      core.NewStyle(rgb(0, 92, 197)),
			TokenKeyword:     core.NewStyle(rgb(215, 58, 73)),
			TokenDeclaration: core.NewStyle(rgb(215, 58, 73)),
			TokenConstant:    core.NewStyle(rgb(0, 92, 197)),
			TokenTypeName:    core.NewStyle(rgb(111, 66, 193)),
			TokenBuiltin:     core.NewStyle(rgb(0, 92, 197)),
			TokenFunction:    core.NewStyle(rgb(111, 66, 193)),
			TokenMeta:        core.NewStyle(rgb(227, 98, 9)),
			TokenHeading:     core.NewStyle(rgb(0, 92, 197)).Bold(),
			TokenEmphasis:    core.NewStyle(rgb(36, 41, 46)).Italic(),
			TokenStrong:      core.NewStyle(rgb(36, 41, 46)).Bold(),
			TokenCode:        core.NewStyle(rgb(3, 47, 98)),
			TokenLink:        core.NewStyle(rgb(3, 102, 214)).Underline(),
			TokenError:       core.NewStyle(rgb(179, 29, 40)).Bold(),
		},
	}
}

// ThemeFromChroma derives a theme from a registered chroma style.
func ThemeFromChroma(name string) (*Theme, bool) {
	sty, ok := styles.Registry[name]
	if !ok {
		sty, ok = styles.Registry[strings.ToLower(name)]
	}
	if !ok {
		return nil, false
	}

	bgEntry := sty.Get(chroma.Background)
	bg := colorFromChroma(bgEntry.Background, core.ColorBlack)
	fg := colorFromChroma(bgEntry.Colour, core.ColorFromRGB(200, 200, 200))

	t := &Theme{
		Name:          sty.Name,
		Background:    bg,
		Foreground:    fg,
		Selection:     bg.Blend(fg, 0.25),
		Cursor:        fg,
		LineHighlight: colorFromChroma(sty.Get(chroma.LineHighlight).Background, bg.Blend(fg, 0.07)),
		Tokens:        make(map[TokenType]core.Style, len(chromaTokenFor)),
	}
	for typ, ct := range chromaTokenFor {
		e := sty.Get(ct)
		s := core.NewStyle(colorFromChroma(e.Colour, fg))
		if e.Bold == chroma.Yes {
			s = s.Bold()
		}
		if e.Italic == chroma.Yes {
			s = s.Italic()
		}
		if e.Underline == chroma.Yes {
			s = s.Underline()
		}
		t.Tokens[typ] = s
	}
	return t, true
}

func colorFromChroma(c chroma.Colour, fallback core.Color) core.Color {
	if !c.IsSet() {
		return fallback
	}
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}

// LookupTheme resolves a theme by name: the built-in themes first, then
// chroma styles.
func LookupTheme(name string) (*Theme, bool) {
	switch strings.ToLower(name) {
	case "", DefaultThemeName:
		return DefaultTheme(), true
	case "light":
		return LightTheme(), true
	}
	return ThemeFromChroma(name)
}

// ThemeNames lists every name LookupTheme accepts.
func ThemeNames() []string {
	names := append([]string{DefaultThemeName, "light"}, styles.Names()...)
	sort.Strings(names)
	return names
}
