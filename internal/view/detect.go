package view

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
)

// linefeedSampleLen is the number of leading characters inspected when
// detecting the line terminator.
const linefeedSampleLen = 1000

// LineFeed is a line terminator.
type LineFeed uint8

const (
	LF LineFeed = iota
	CR
	CRLF
)

// DefaultLineFeed is the terminator of the host platform.
func DefaultLineFeed() LineFeed {
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}

// Sequence returns the characters of the terminator.
func (l LineFeed) Sequence() string {
	switch l {
	case CR:
		return "\r"
	case CRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// String returns the terminator name.
func (l LineFeed) String() string {
	switch l {
	case LF:
		return "LF"
	case CR:
		return "CR"
	case CRLF:
		return "CRLF"
	default:
		return "unknown"
	}
}

// IndentKind tells whether a level of indentation is a tab or spaces.
type IndentKind uint8

const (
	IndentSpace IndentKind = iota
	IndentTab
)

// Indentation is the indentation unit of a document.
type Indentation struct {
	Kind IndentKind
	Size int
}

// Unit returns the text of one indentation level.
func (i Indentation) Unit() string {
	if i.Kind == IndentTab {
		return "\t"
	}
	return strings.Repeat(" ", max(i.Size, 1))
}

// String returns a description such as "Tab(4)" or "Space(2)".
func (i Indentation) String() string {
	if i.Kind == IndentTab {
		return fmt.Sprintf("Tab(%d)", i.Size)
	}
	return fmt.Sprintf("Space(%d)", i.Size)
}

// DetectLinefeed picks the most frequent terminator among the first
// characters of the text. CR wins only when it beats both others, LF
// likewise, and CRLF takes every tie. Text without any terminator gets the
// platform default.
func (v *View) DetectLinefeed() LineFeed {
	sample := []rune(v.store.Slice(0, linefeedSampleLen))
	v.linefeed = detectLinefeed(sample)
	return v.linefeed
}

func detectLinefeed(sample []rune) LineFeed {
	var cr, lf, crlf int
	for i := 0; i < len(sample); i++ {
		switch sample[i] {
		case '\r':
			if i+1 >= len(sample) {
				break
			}
			i++
			if sample[i] == '\n' {
				crlf++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}

	switch {
	case cr == 0 && lf == 0 && crlf == 0:
		return DefaultLineFeed()
	case cr > crlf && cr > lf:
		return CR
	case lf > crlf && lf > cr:
		return LF
	default:
		return CRLF
	}
}

// DetectIndentation guesses the indentation unit. Tabs win when more lines
// start with a tab than with a space. Otherwise the most common change in
// leading spaces between consecutive lines, ignoring changes of one, is the
// unit; without any the tab size is used.
func (v *View) DetectIndentation() Indentation {
	lines := make([]string, 0, v.store.LineCount())
	for i := range v.store.LineCount() {
		lines = append(lines, v.store.Line(i))
	}
	v.indentation = detectIndentation(lines, v.tabSize)
	return v.indentation
}

func detectIndentation(lines []string, tabSize int) Indentation {
	var tabs, spaces int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "\t"):
			tabs++
		case strings.HasPrefix(line, " "):
			spaces++
		}
	}
	if tabs > spaces {
		return Indentation{Kind: IndentTab, Size: tabSize}
	}

	counts := make(map[int]int)
	last := 0
	for _, line := range lines {
		width := len(line) - len(strings.TrimLeft(line, " "))
		delta := width - last
		if delta < 0 {
			delta = -delta
		}
		if delta > 1 {
			counts[delta]++
		}
		last = width
	}

	best, bestCount := 0, 0
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best, bestCount = size, n
		}
	}
	if best == 0 {
		return Indentation{Kind: IndentSpace, Size: tabSize}
	}
	return Indentation{Kind: IndentSpace, Size: best}
}

// DetectSyntax selects a highlighter from the file name and content and
// restyles the visible lines.
func (v *View) DetectSyntax() string {
	name := v.store.Path()
	if name == "" {
		name = v.store.Name()
	}
	h := v.registry.Detect(name, v.store.Slice(0, syntaxSampleLen))
	v.styling.SetHighlighter(h)
	v.styling.Expand(v.viewport.LineEnd(), v.store)
	log.Debug().Str("view", v.Name()).Str("syntax", h.Language()).Msg("syntax detected")
	return h.Language()
}

// syntaxSampleLen is the number of leading characters given to content
// based language detection.
const syntaxSampleLen = 4096
