package coords

import (
	"testing"

	"github.com/dshills/ropedit/internal/engine/textstore"
)

func TestIndexToPoint(t *testing.T) {
	s := textstore.FromString("text\nplops\ntoto  ")
	m := NewMapper(4)

	tests := []struct {
		offset int
		want   Point
	}{
		{3, Point{0, 3}},
		{4, Point{0, 4}},
		{5, Point{1, 0}},
		{12, Point{2, 1}},
		{17, Point{2, 6}},
		{-4, Point{0, 0}},
		{99, Point{2, 6}},
	}
	for _, tt := range tests {
		if got := m.IndexToPoint(s, tt.offset); got != tt.want {
			t.Errorf("IndexToPoint(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestPointToIndex(t *testing.T) {
	s := textstore.FromString("text\nplops\ntoto  ")
	m := NewMapper(4)

	tests := []struct {
		name  string
		point Point
		want  int
	}{
		{"normal", Point{0, 3}, 3},
		{"line end", Point{0, 4}, 4},
		{"line start", Point{1, 0}, 5},
		{"last line", Point{2, 1}, 12},
		{"column too far", Point{0, 5}, 4},
		{"line too far", Point{4, 1}, 12},
		{"eof is a position", Point{4, 6}, 17},
		{"negative", Point{-1, -1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.PointToIndex(s, tt.point); got != tt.want {
				t.Errorf("PointToIndex(%v) = %d, want %d", tt.point, got, tt.want)
			}
		})
	}
}

func TestTabbedLines(t *testing.T) {
	s := textstore.FromString("\tab\nx\ty\r\n")
	m := NewMapper(4)

	if got := m.IndexToPoint(s, 1); got != (Point{0, 4}) {
		t.Errorf("IndexToPoint(1) = %v, want 0:4", got)
	}
	if got := m.IndexToPoint(s, 6); got != (Point{1, 4}) {
		t.Errorf("IndexToPoint(6) = %v, want 1:4", got)
	}
	if got := m.PointToIndex(s, Point{0, 2}); got != 0 {
		t.Errorf("PointToIndex(0:2) = %d, want 0", got)
	}
	if got := m.PointToIndex(s, Point{1, 9}); got != 7 {
		t.Errorf("PointToIndex(1:9) = %d, want 7 (before the CR)", got)
	}
	if got := m.LineWidth(s, 1); got != 5 {
		t.Errorf("LineWidth(1) = %d, want 5", got)
	}
}

func TestRoundTrip(t *testing.T) {
	s := textstore.FromString("func main() {\n\tif x {\n\t\treturn\tnil\n\t}\r\n}\nNöel 世界\n")
	m := NewMapper(4)

	for line := 0; line < s.LineCount(); line++ {
		for off := s.LineToChar(line); off <= s.LineToLastChar(line); off++ {
			p := m.IndexToPoint(s, off)
			if got := m.PointToIndex(s, p); got != off {
				t.Errorf("PointToIndex(IndexToPoint(%d) = %v) = %d", off, p, got)
			}
		}
	}
}

func TestPointClampsNeverExceedColumn(t *testing.T) {
	s := textstore.FromString("a\tbc\n\t\tz\nshort")
	m := NewMapper(4)

	for line := 0; line < 5; line++ {
		for col := 0; col < 14; col++ {
			p := m.IndexToPoint(s, m.PointToIndex(s, Point{line, col}))
			if p.Line != min(line, s.LineCount()-1) {
				t.Errorf("Point{%d,%d} resolved to line %d", line, col, p.Line)
			}
			if p.Column > col {
				t.Errorf("Point{%d,%d} resolved to column %d", line, col, p.Column)
			}
		}
	}
}
