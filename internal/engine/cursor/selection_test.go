package cursor

import (
	"testing"

	"github.com/dshills/ropedit/internal/engine/textstore"
)

// Selection Tests

func TestSelectionNormalize(t *testing.T) {
	tests := []struct {
		name       string
		sel        Selection
		start, end int
	}{
		{"forward", NewSelection(2, 7), 2, 7},
		{"backward", NewSelection(7, 2), 2, 7},
		{"empty", NewSelection(4, 4), 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.sel.Range()
			if start != tt.start || end != tt.end {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", start, end, tt.start, tt.end)
			}
			for i := -1; i < 10; i++ {
				want := tt.start <= i && i < tt.end
				if got := tt.sel.Contains(i); got != want {
					t.Errorf("Contains(%d) = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestSelectionExpand(t *testing.T) {
	s := NewSelection(5, 6).Expand(2)
	if s.Start != 5 || s.End != 2 {
		t.Errorf("Expand(2) = %v, want anchor 5 end 2", s)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestSelectionClamp(t *testing.T) {
	s := NewSelection(-2, 40).Clamp(10)
	if s.Start != 0 || s.End != 10 {
		t.Errorf("Clamp(10) = %v, want 0->10", s)
	}
}

func TestSelectWord(t *testing.T) {
	s := textstore.FromString("let foo = bar.baz(x)\nnext line")

	tests := []struct {
		name   string
		offset int
		start  int
		end    int
		ok     bool
	}{
		{"first word", 1, 0, 3, true},
		{"middle word", 5, 4, 7, true},
		{"dotted", 12, 10, 13, true},
		{"call", 15, 14, 17, true},
		{"on delimiter", 3, 0, 0, false},
		{"next line", 22, 21, 25, true},
		{"last word without delimiter", 27, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ok := SelectWord(s, tt.offset)
			if ok != tt.ok {
				t.Fatalf("SelectWord(%d) ok = %v, want %v", tt.offset, ok, tt.ok)
			}
			if ok && (sel.Start != tt.start || sel.End != tt.end) {
				t.Errorf("SelectWord(%d) = %v, want %d->%d", tt.offset, sel, tt.start, tt.end)
			}
		})
	}
}
