package backend

import (
	"github.com/dshills/ropedit/internal/renderer/core"
	"github.com/dshills/ropedit/internal/renderer/display"
)

// Metrics converts drawing units to cells.
type Metrics interface {
	Advance() int
	LineHeight() int
}

// Painter executes drawing commands on a Backend. Positions are in
// drawing units; one cell is Advance units wide and LineHeight units high.
// Writes outside the clip region are dropped.
type Painter struct {
	dst     Backend
	adv, lh int

	clipX, clipY, clipW, clipH int

	originX, originY int
	x, y             int
	color            core.Color
	attrs            core.Attribute
}

// NewPainter creates a painter on dst clipped to the w by h cells at
// (x, y). Commands are positioned relative to that corner.
func NewPainter(dst Backend, m Metrics, x, y, w, h int) *Painter {
	p := &Painter{
		dst:   dst,
		adv:   max(m.Advance(), 1),
		lh:    max(m.LineHeight(), 1),
		clipX: x, clipY: y, clipW: w, clipH: h,
	}
	p.reset()
	return p
}

func (p *Painter) reset() {
	p.originX, p.originY = 0, 0
	p.x, p.y = 0, 0
	p.color = core.ColorDefault
	p.attrs = core.AttrNone
}

// Replay executes the commands of list from a fresh pen state.
func (p *Painter) Replay(list *display.List) {
	p.reset()
	for _, cmd := range list.Commands() {
		p.Add(cmd)
	}
}

// Add executes one command.
func (p *Painter) Add(cmd display.Command) {
	switch c := cmd.(type) {
	case display.Move:
		p.x, p.y = c.X, c.Y
	case display.Translate:
		p.originX += c.X
		p.originY += c.Y
	case display.Color:
		p.color = c.Color
	case display.SetFont:
		bold, italic, underline := display.ParseVariant(c.Name)
		p.attrs = core.AttrNone
		if bold {
			p.attrs |= core.AttrBold
		}
		if italic {
			p.attrs |= core.AttrItalic
		}
		if underline {
			p.attrs |= core.AttrUnderline
		}
	case display.Char:
		cx, cy := p.cell(p.x, p.y)
		if !p.visible(cx, cy) {
			return
		}
		cell := p.dst.GetCell(cx, cy)
		cell.Rune = c.Rune
		cell.Style.Foreground = p.color
		cell.Style.Attributes = p.attrs
		p.dst.SetCell(cx, cy, cell)
	case display.Rect:
		p.fill(p.x, p.y, c.W, c.H)
	case display.Clear:
		for cy := p.clipY; cy < p.clipY+p.clipH; cy++ {
			for cx := p.clipX; cx < p.clipX+p.clipW; cx++ {
				p.dst.SetCell(cx, cy, Cell{Rune: ' ', Style: core.Style{Foreground: core.ColorDefault, Background: c.Color}})
			}
		}
	}
}

// cell converts a pen position to surface coordinates.
func (p *Painter) cell(x, y int) (int, int) {
	return p.clipX + (p.originX+x)/p.adv, p.clipY + (p.originY+y)/p.lh
}

func (p *Painter) visible(cx, cy int) bool {
	return cx >= p.clipX && cx < p.clipX+p.clipW && cy >= p.clipY && cy < p.clipY+p.clipH
}

// fill sets the background of every cell the rectangle touches.
func (p *Painter) fill(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := p.cell(x, y)
	cols := (w + p.adv - 1) / p.adv
	rows := (h + p.lh - 1) / p.lh
	for cy := y0; cy < y0+rows; cy++ {
		for cx := x0; cx < x0+cols; cx++ {
			if !p.visible(cx, cy) {
				continue
			}
			cell := p.dst.GetCell(cx, cy)
			cell.Style.Background = p.color
			p.dst.SetCell(cx, cy, cell)
		}
	}
}
