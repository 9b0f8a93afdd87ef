// Package statusline draws the status bar and the file name prompt on the
// last row of the surface.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/renderer/core"
)

// StatusLine renders the bottom status line including the prompt input.
type StatusLine struct {
	// Display state
	filename      string
	modified      bool
	changedOnDisk bool
	views         int
	line          int // 1-indexed
	col           int // 1-indexed
	format        []string

	// Prompt state
	promptActive bool
	promptLabel  string
	promptInput  []rune

	// Message display
	message     string
	messageType MessageType

	fg, bg core.Color
	width  int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// errorColor is the foreground of error messages.
var errorColor = core.ColorFromRGB(224, 64, 64)

// New creates a status line drawn in fg on bg.
func New(fg, bg core.Color) *StatusLine {
	return &StatusLine{fg: fg, bg: bg, line: 1, col: 1}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetChangedOnDisk flags a file rewritten by another program while it had
// unsaved edits.
func (s *StatusLine) SetChangedOnDisk(changed bool) {
	s.changedOnDisk = changed
}

// SetViews updates the number of open views. One view is not shown.
func (s *StatusLine) SetViews(n int) {
	s.views = n
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetFormat sets the file format fields shown after the position, such as
// the encoding and the linefeed.
func (s *StatusLine) SetFormat(fields ...string) {
	s.format = fields
}

// SetPrompt shows label and input instead of the status bar. An empty
// label hides the prompt.
func (s *StatusLine) SetPrompt(label string, input []rune) {
	s.promptActive = label != ""
	s.promptLabel = label
	s.promptInput = input
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line to the backend at the given row. With an
// active prompt the terminal cursor is placed at the end of the input.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if row < 0 {
		return
	}
	if s.promptActive {
		text := s.promptLabel + string(s.promptInput)
		s.fill(b, row, " "+text, "")
		b.ShowCursor(len([]rune(text))+1, row)
		return
	}
	s.fill(b, row, s.left(), s.Right())
}

func (s *StatusLine) left() string {
	var sb strings.Builder
	sb.WriteString(s.filename)
	if s.modified {
		sb.WriteString(" *")
	}
	if s.changedOnDisk {
		sb.WriteString(" [changed on disk]")
	}
	if s.views > 1 {
		fmt.Fprintf(&sb, " (%d views)", s.views)
	}
	return " " + sb.String()
}

// Right returns the position and format text of the right side.
func (s *StatusLine) Right() string {
	parts := append([]string{fmt.Sprintf("Ln %d, Col %d", max(s.line, 1), max(s.col, 1))}, s.format...)
	return strings.Join(parts, "  ") + " "
}

// fill draws left, the message and right on row. The right side is
// dropped when everything does not fit.
func (s *StatusLine) fill(b backend.Backend, row int, left, right string) {
	bar := core.Style{Foreground: s.fg, Background: s.bg}
	msgStyle := bar
	if s.messageType == MessageError {
		msgStyle = bar.Bold()
		msgStyle.Foreground = errorColor
	}

	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, backend.Cell{Rune: ' ', Style: bar})
	}

	col := s.put(b, row, 0, left, bar)
	if s.message != "" && !s.promptActive {
		col = s.put(b, row, col+2, s.message, msgStyle)
	}

	r := []rune(right)
	if start := s.width - len(r); start > col {
		s.put(b, row, start, right, bar)
	}
}

func (s *StatusLine) put(b backend.Backend, row, col int, text string, style core.Style) int {
	for _, r := range text {
		if col >= s.width {
			break
		}
		b.SetCell(col, row, backend.Cell{Rune: r, Style: style})
		col++
	}
	return col
}
