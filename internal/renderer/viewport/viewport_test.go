package viewport

import "testing"

func TestResize(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		adv, lh       int
		width, height int
	}{
		{"terminal", 80, 24, 1, 1, 79, 23},
		{"pixels", 800, 600, 10, 20, 79, 29},
		{"too small", 5, 10, 10, 20, 0, 0},
		{"bad metrics", 10, 10, 0, 0, 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Resize(tt.w, tt.h, tt.adv, tt.lh)
			if v.Width() != tt.width || v.Height() != tt.height {
				t.Errorf("Resize() = %dx%d, want %dx%d", v.Width(), v.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestFocus(t *testing.T) {
	v := New()
	v.Resize(11, 11, 1, 1) // 10 lines and columns past the first

	v.Focus(25, 0, 100)
	if v.LineStart() != 15 || v.LineEnd() != 25 {
		t.Errorf("after Focus(25) lines = %d..%d, want 15..25", v.LineStart(), v.LineEnd())
	}

	v.Focus(20, 0, 100)
	if v.LineStart() != 15 {
		t.Errorf("Focus inside the view moved to %d", v.LineStart())
	}

	v.Focus(3, 0, 100)
	if v.LineStart() != 3 {
		t.Errorf("after Focus(3) LineStart() = %d, want 3", v.LineStart())
	}

	v.Focus(3, 42, 100)
	if v.ColStart() != 32 || v.ColEnd() != 42 {
		t.Errorf("after Focus(col 42) cols = %d..%d, want 32..42", v.ColStart(), v.ColEnd())
	}
	v.Focus(3, 1, 100)
	if v.ColStart() != 1 {
		t.Errorf("after Focus(col 1) ColStart() = %d, want 1", v.ColStart())
	}
}

func TestFocusClampsToDocument(t *testing.T) {
	v := New()
	v.Focus(50, 0, 4)
	if v.LineStart() != 4 {
		t.Errorf("LineStart() = %d, want 4", v.LineStart())
	}
}

func TestScroll(t *testing.T) {
	v := New()
	v.Resize(100, 100, 10, 20)

	v.Scroll(0, -3, 50)
	if v.LineStart() != 3 {
		t.Errorf("Scroll down 3: LineStart() = %d, want 3", v.LineStart())
	}
	v.Scroll(0, -0.5, 50)
	if v.LineStart() != 4 {
		t.Errorf("half line rounds up: LineStart() = %d, want 4", v.LineStart())
	}
	v.Scroll(0, 10, 50)
	if v.LineStart() != 0 {
		t.Errorf("Scroll past top: LineStart() = %d, want 0", v.LineStart())
	}
	v.Scroll(0, -1000, 50)
	if v.LineStart() != 50 {
		t.Errorf("Scroll past bottom: LineStart() = %d, want 50", v.LineStart())
	}
	v.Scroll(-2, 0, 50)
	if v.ColStart() != 2 {
		t.Errorf("Scroll right: ColStart() = %d, want 2", v.ColStart())
	}
	v.Scroll(5, 0, 50)
	if v.ColStart() != 0 {
		t.Errorf("Scroll past left: ColStart() = %d, want 0", v.ColStart())
	}
}

func TestScrollAfterFocus(t *testing.T) {
	v := New()
	v.Resize(10, 5, 1, 1)
	v.Focus(30, 0, 100)
	v.Scroll(0, 1, 100)
	if v.LineStart() != 25 {
		t.Errorf("Scroll after Focus: LineStart() = %d, want 25", v.LineStart())
	}
}

func TestContainsAndScreenToCell(t *testing.T) {
	v := New()
	v.Resize(50, 50, 10, 10) // 4 lines and 4 columns past the first
	v.Focus(10, 10, 100)

	if !v.Contains(6, 6) || !v.Contains(10, 10) {
		t.Error("Contains() should include both ends")
	}
	if v.Contains(5, 6) || v.Contains(6, 11) {
		t.Error("Contains() should exclude outside cells")
	}

	line, col := v.ScreenToCell(25, 15)
	if line != 7 || col != 8 {
		t.Errorf("ScreenToCell(25, 15) = %d,%d; want 7,8", line, col)
	}
	line, col = v.ScreenToCell(-100, -100)
	if line != 0 || col != 0 {
		t.Errorf("ScreenToCell(negative) = %d,%d; want 0,0", line, col)
	}
}
