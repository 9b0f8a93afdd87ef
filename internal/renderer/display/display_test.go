package display

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/ropedit/internal/renderer/core"
)

func TestListRecordsInOrder(t *testing.T) {
	var l List
	l.Add(Clear{Color: core.ColorBlack})
	l.Add(Move{X: 1, Y: 2})
	l.Add(Char{Rune: 'h'})
	l.Add(Move{X: 2, Y: 2})
	l.Add(Char{Rune: 'é'})

	want := []Command{
		Clear{Color: core.ColorBlack},
		Move{X: 1, Y: 2},
		Char{Rune: 'h'},
		Move{X: 2, Y: 2},
		Char{Rune: 'é'},
	}
	if diff := cmp.Diff(want, l.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
	if got := l.Text(); got != "hé" {
		t.Errorf("Text() = %q, want %q", got, "hé")
	}

	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", l.Len())
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Move{X: 3, Y: 4}, "move(3,4)"},
		{Translate{X: -1, Y: 0}, "translate(-1,0)"},
		{Color{Color: core.ColorWhite}, "color(#FFFFFF)"},
		{Char{Rune: 'a'}, "char('a')"},
		{Rect{W: 2, H: 16}, "rect(2x16)"},
		{Clear{Color: core.ColorDefault}, "clear(default)"},
		{SetFont{Name: "mono"}, "font(mono)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	f := NewFont("mono", 9, 18)
	if f.Advance() != 9 || f.LineHeight() != 18 || f.Name() != "mono" {
		t.Errorf("NewFont() = %+v", f)
	}
	if got := f.Width(4); got != 36 {
		t.Errorf("Width(4) = %d, want 36", got)
	}
	if z := NewFont("z", 0, -3); z.Advance() != 1 || z.LineHeight() != 1 {
		t.Errorf("NewFont with bad metrics = %d/%d, want 1/1", z.Advance(), z.LineHeight())
	}
	var zero Font
	if zero.Advance() != 1 || zero.LineHeight() != 1 {
		t.Error("zero Font should report unit metrics")
	}
	if CellFont.Advance() != 1 || CellFont.LineHeight() != 1 {
		t.Error("CellFont should be one unit per cell")
	}
}

func TestFontVariants(t *testing.T) {
	tests := []struct {
		bold, italic, underline bool
		want                    string
	}{
		{false, false, false, "regular"},
		{true, false, false, "bold"},
		{true, true, false, "bold-italic"},
		{false, true, true, "italic-underline"},
	}
	for _, tt := range tests {
		name := VariantName(tt.bold, tt.italic, tt.underline)
		if name != tt.want {
			t.Errorf("VariantName(%v, %v, %v) = %q, want %q", tt.bold, tt.italic, tt.underline, name, tt.want)
		}
		b, i, u := ParseVariant(name)
		if b != tt.bold || i != tt.italic || u != tt.underline {
			t.Errorf("ParseVariant(%q) = %v, %v, %v", name, b, i, u)
		}
	}
}
