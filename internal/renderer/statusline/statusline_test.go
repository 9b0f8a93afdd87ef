package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/renderer/core"
)

func newSurface(t *testing.T, w int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(w, 2)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRenderStatusBar(t *testing.T) {
	b := newSurface(t, 60)
	s := New(core.ColorBlack, core.ColorWhite)
	s.Resize(60)
	s.SetFilename("main.go")
	s.SetModified(true)
	s.SetViews(2)
	s.SetPosition(3, 7)
	s.SetFormat("UTF-8", "LF", "Tabs", "go")
	s.Render(b, 1)

	row := b.Row(1)
	if !strings.HasPrefix(row, " main.go * (2 views)") {
		t.Errorf("left side = %q", row)
	}
	if !strings.HasSuffix(row, "Ln 3, Col 7  UTF-8  LF  Tabs  go ") {
		t.Errorf("right side = %q", row)
	}
	if got := b.GetCell(0, 1).Style.Background; got != core.ColorWhite {
		t.Errorf("bar background = %v, want white", got)
	}
	if b.Row(0) != strings.Repeat(" ", 60) {
		t.Error("only the given row should be drawn")
	}
}

func TestRenderDropsRightSide(t *testing.T) {
	b := newSurface(t, 20)
	s := New(core.ColorBlack, core.ColorWhite)
	s.Resize(20)
	s.SetFilename("a-rather-long-name.txt")
	s.Render(b, 0)

	if row := b.Row(0); strings.Contains(row, "Ln") {
		t.Errorf("row %q should not show the position", row)
	}
}

func TestRenderMessage(t *testing.T) {
	b := newSurface(t, 60)
	s := New(core.ColorBlack, core.ColorWhite)
	s.Resize(60)
	s.SetFilename("x")
	s.SetMessage("write failed", MessageError)
	s.Render(b, 0)

	row := b.Row(0)
	idx := strings.Index(row, "write failed")
	if idx != 4 {
		t.Fatalf("message at %d in %q, want 4", idx, row)
	}
	cell := b.GetCell(idx, 0)
	if cell.Style.Foreground != errorColor || !cell.Style.Attributes.Has(core.AttrBold) {
		t.Errorf("error message style = %+v", cell.Style)
	}

	s.ClearMessage()
	s.Render(b, 0)
	if strings.Contains(b.Row(0), "write failed") {
		t.Error("message should be cleared")
	}
}

func TestRenderPrompt(t *testing.T) {
	b := newSurface(t, 30)
	s := New(core.ColorBlack, core.ColorWhite)
	s.Resize(30)
	s.SetMessage("ignored", MessageInfo)
	s.SetPrompt("File: ", []rune("a.txt"))
	s.Render(b, 1)

	if row := b.Row(1); !strings.HasPrefix(row, " File: a.txt ") || strings.Contains(row, "ignored") {
		t.Errorf("prompt row = %q", row)
	}
	if x, y, visible := b.CursorPosition(); x != 12 || y != 1 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (12, 1, true)", x, y, visible)
	}
}
