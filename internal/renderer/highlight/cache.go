package highlight

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/ropedit/internal/renderer/core"
)

// Source is the document a Cache reads lines from.
type Source interface {
	LineCount() int
	// Line returns the text of a line including its terminator.
	Line(line int) string
}

// Span is a run of Len characters sharing one style.
type Span struct {
	Style core.Style
	Len   int
}

// Cache holds, for a prefix of the document, the lexer state at the end of
// every line and the style runs of every line. Both slices always have the
// same length.
type Cache struct {
	highlighter Highlighter
	theme       *Theme
	states      []LexerState
	lines       [][]Span
}

// NewCache creates an empty cache. A nil highlighter means plain text and a
// nil theme the default theme.
func NewCache(h Highlighter, theme *Theme) *Cache {
	if h == nil {
		h = PlainText()
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Cache{highlighter: h, theme: theme}
}

// Highlighter returns the active highlighter.
func (c *Cache) Highlighter() Highlighter {
	return c.highlighter
}

// Theme returns the active theme.
func (c *Cache) Theme() *Theme {
	return c.theme
}

// SetHighlighter switches highlighters and empties the cache.
func (c *Cache) SetHighlighter(h Highlighter) {
	if h == nil {
		h = PlainText()
	}
	c.highlighter = h
	c.Reset()
}

// SetTheme switches themes and empties the cache.
func (c *Cache) SetTheme(t *Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	c.theme = t
	c.Reset()
}

// Reset drops every cached line.
func (c *Cache) Reset() {
	c.states = c.states[:0]
	c.lines = c.lines[:0]
}

// Len returns the number of cached lines.
func (c *Cache) Len() int {
	return len(c.states)
}

// Update discards cached lines from start on and re-tokenizes lines up to
// and including end, stopping at the end of src. Tokenizing never resumes
// past the cached prefix, so a start beyond Len begins at Len.
func (c *Cache) Update(start, end int, src Source) {
	s := min(max(start, 0), len(c.states))
	c.states = c.states[:s]
	c.lines = c.lines[:s]

	state := LexerStateNormal
	if s > 0 {
		state = c.states[s-1]
	}
	last := min(end, src.LineCount()-1)
	for i := s; i <= last; i++ {
		text := strings.TrimSuffix(src.Line(i), "\n")
		var tokens []Token
		tokens, state = c.highlighter.HighlightLine(text, state)
		c.states = append(c.states, state)
		c.lines = append(c.lines, c.spans(text, tokens))
	}
}

// Expand makes sure lines up to end are cached.
func (c *Cache) Expand(end int, src Source) {
	if end >= len(c.states) {
		c.Update(len(c.states), end, src)
	}
}

// State returns the lexer state at the end of line i.
func (c *Cache) State(i int) (LexerState, bool) {
	if i < 0 || i >= len(c.states) {
		return LexerStateNormal, false
	}
	return c.states[i], true
}

// Line returns the style runs of line i, or nil if it is not cached.
func (c *Cache) Line(i int) []Span {
	if i < 0 || i >= len(c.lines) {
		return nil
	}
	return c.lines[i]
}

// Styles returns an iterator over the per-character styles of line i.
func (c *Cache) Styles(i int) *StyleIter {
	return &StyleIter{spans: c.Line(i), fallback: c.theme.Default()}
}

// spans converts byte-column tokens of text into character runs covering
// the whole of text.
func (c *Cache) spans(text string, tokens []Token) []Span {
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })

	var out []Span
	add := func(style core.Style, from, to int) {
		n := utf8.RuneCountInString(text[from:to])
		if n == 0 {
			return
		}
		if k := len(out) - 1; k >= 0 && out[k].Style == style {
			out[k].Len += n
			return
		}
		out = append(out, Span{Style: style, Len: n})
	}

	def := c.theme.Default()
	pos := 0
	for _, tok := range tokens {
		start := min(max(tok.Start, pos), len(text))
		end := min(tok.End, len(text))
		if end <= start {
			continue
		}
		add(def, pos, start)
		add(c.theme.StyleFor(tok.Type), start, end)
		pos = end
	}
	add(def, pos, len(text))
	return out
}

// StyleIter yields one style per character of a line.
type StyleIter struct {
	spans    []Span
	idx      int
	used     int
	fallback core.Style
}

// Next returns the style of the next character. Past the last span it
// keeps returning the theme's default style.
func (it *StyleIter) Next() core.Style {
	for it.idx < len(it.spans) && it.used >= it.spans[it.idx].Len {
		it.idx++
		it.used = 0
	}
	if it.idx >= len(it.spans) {
		return it.fallback
	}
	it.used++
	return it.spans[it.idx].Style
}

// Done reports whether every span has been consumed.
func (it *StyleIter) Done() bool {
	for it.idx < len(it.spans) && it.used >= it.spans[it.idx].Len {
		it.idx++
		it.used = 0
	}
	return it.idx >= len(it.spans)
}
