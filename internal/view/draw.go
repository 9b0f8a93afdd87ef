package view

import (
	"github.com/dshills/ropedit/internal/engine/textstore"
	"github.com/dshills/ropedit/internal/renderer/core"
	"github.com/dshills/ropedit/internal/renderer/display"
)

// cursorWidth is the width of the cursor bar in surface units.
const cursorWidth = 2

// DrawSink receives drawing commands.
type DrawSink interface {
	Add(cmd display.Command)
}

// pen drops commands that would not change the pen state.
type pen struct {
	sink  DrawSink
	color core.Color
	font  string
	set   bool
}

func (p *pen) setColor(c core.Color) {
	if p.set && p.color == c {
		return
	}
	p.sink.Add(display.Color{Color: c})
	p.color, p.set = c, true
}

func (p *pen) setFont(s core.Style) {
	name := display.VariantName(
		s.Attributes.Has(core.AttrBold),
		s.Attributes.Has(core.AttrItalic),
		s.Attributes.Has(core.AttrUnderline),
	)
	if p.font == name {
		return
	}
	p.sink.Add(display.SetFont{Name: name})
	p.font = name
}

// Draw emits the visible lines, the selection and the cursor. Positions
// are relative to the view origin.
func (v *View) Draw(sink DrawSink) {
	theme := v.theme
	adv, lh := v.metrics.Advance, v.metrics.LineHeight
	tabs := v.mapper.Tabs()
	vp := v.viewport
	p := &pen{sink: sink, font: display.FontRegular}

	last := min(vp.LineEnd(), v.store.LineCount()-1)
	for line := vp.LineStart(); line <= last; line++ {
		y := (line - vp.LineStart()) * lh
		if line == v.cursor.Line() && v.selection == nil {
			sink.Add(display.Move{X: 0, Y: y})
			p.setColor(theme.LineHighlight)
			sink.Add(display.Rect{W: (vp.Width() + 1) * adv, H: lh})
		}

		styles := v.styling.Styles(line)
		idx := v.store.LineToChar(line)
		col := 0
		for _, r := range v.store.LineChars(line) {
			style := styles.Next()
			visible := col >= vp.ColStart() && col <= vp.ColEnd()
			x := (col - vp.ColStart()) * adv

			if visible && v.selection != nil && v.selection.Contains(idx) {
				w := adv
				if r == '\t' {
					w = (tabs.NextTabStop(col) - col) * adv
				}
				sink.Add(display.Move{X: x, Y: y})
				p.setColor(theme.Selection)
				sink.Add(display.Rect{W: w, H: lh})
			}

			switch {
			case r == '\t':
				col = tabs.NextTabStop(col)
			case textstore.IsEOLChar(r):
			default:
				if visible {
					fg := style.Foreground
					if fg.IsDefault() {
						fg = theme.Foreground
					}
					sink.Add(display.Move{X: x, Y: y})
					p.setFont(style)
					p.setColor(fg)
					sink.Add(display.Char{Rune: r})
				}
				col++
			}
			idx++
		}
	}

	line, col := v.cursor.Line(), v.cursor.Column()
	if vp.Contains(line, col) {
		sink.Add(display.Move{X: (col - vp.ColStart()) * adv, Y: (line - vp.LineStart()) * lh})
		p.setColor(theme.Cursor)
		sink.Add(display.Rect{W: min(cursorWidth, adv), H: lh})
	}
}
