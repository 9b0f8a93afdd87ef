package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/ropedit/internal/renderer/display"
	"github.com/dshills/ropedit/internal/renderer/highlight"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWorkspaceOpenSharesStore(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "text")
	w := NewWorkspace()

	v1, err := w.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	v2, err := w.Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	if v1.Store() != v2.Store() {
		t.Error("views on one file should share a store")
	}
	if w.Len() != 2 || w.Registry().Len() != 1 {
		t.Errorf("Len() = %d, Registry().Len() = %d, want 2, 1", w.Len(), w.Registry().Len())
	}
	if w.Current() != v2 {
		t.Error("the opened view should become current")
	}

	v1.InsertChar('r')
	w.SyncFrom(v1)
	if got := v2.String(); got != "rtext" {
		t.Errorf("v2.String() = %q, want %q", got, "rtext")
	}
}

// countingHighlighter styles nothing and counts the lines it tokenizes.
type countingHighlighter struct {
	lines int
}

func (h *countingHighlighter) HighlightLine(string, highlight.LexerState) ([]highlight.Token, highlight.LexerState) {
	h.lines++
	return nil, highlight.LexerStateNormal
}

func (h *countingHighlighter) Language() string         { return "counting" }
func (h *countingHighlighter) FileExtensions() []string { return []string{".cnt"} }

func TestSyncFromRestylesFromEditedLine(t *testing.T) {
	const lineCount = 2000
	counter := &countingHighlighter{}
	reg := highlight.NewRegistry()
	reg.Register(counter)

	content := strings.Repeat("line\n", lineCount-1) + "last"
	path := writeFile(t, t.TempDir(), "big.cnt", content)
	w := NewWorkspace(WithRegistry(reg))
	v1, err := w.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := w.Split()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []*View{v1, v2} {
		v.Relayout(80, 11, display.CellFont)
		v.SetIndex(len(content))
		v.FocusOnCursor()
	}

	v1.InsertChar('x')
	counter.lines = 0
	w.SyncFrom(v1)

	if counter.lines != 1 {
		t.Errorf("sibling re-tokenized %d lines after an edit on the last line, want 1", counter.lines)
	}
	if got := v2.String(); !strings.HasSuffix(got, "lastx") {
		t.Errorf("v2 text ends %q, want the edit", got[len(got)-5:])
	}
}

func TestWorkspaceSplitAndClose(t *testing.T) {
	w := NewWorkspace(WithTabSize(8))
	if w.Current() != nil || w.Close() != nil {
		t.Fatal("empty workspace should have no current view")
	}

	first := w.NewBuffer()
	first.Insert("hello")
	second, err := w.Split()
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if second.Store() != first.Store() {
		t.Error("Split() should share the store")
	}
	if second.Offset() != 5 {
		t.Errorf("split cursor = %d, want 5", second.Offset())
	}
	if second.TabSize() != 8 {
		t.Errorf("TabSize() = %d, want 8", second.TabSize())
	}

	if w.Next() != first || w.Next() != second || w.Prev() != first {
		t.Error("Next() and Prev() should cycle through the views")
	}

	if w.Close() != first {
		t.Fatal("Close() should close the current view")
	}
	if w.Registry().Len() != 1 {
		t.Errorf("store released while a view still uses it")
	}
	if w.Close() != second {
		t.Fatal("Close() should close the remaining view")
	}
	if w.Registry().Len() != 0 || w.Len() != 0 {
		t.Errorf("Len() = %d, Registry().Len() = %d, want 0, 0", w.Len(), w.Registry().Len())
	}
}

func TestWorkspaceSaveRebinds(t *testing.T) {
	dir := t.TempDir()
	w := NewWorkspace()
	v := w.NewBuffer()
	v.Insert("x")

	path := filepath.Join(dir, "new.py")
	err := w.Save(PathPrompterFunc(func(string) (string, bool) { return path, true }))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if s, ok := w.Registry().Lookup(path); !ok || s != v.Store() {
		t.Error("saved store should be found by its new path")
	}
	if w.Dirty() {
		t.Error("Dirty() = true after save")
	}
}

func TestWorkspaceReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "one")
	w := NewWorkspace()
	v, err := w.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v.SetIndex(3)

	writeFile(t, dir, "a.txt", "x")
	reloaded, err := w.Reload(path)
	if err != nil || !reloaded {
		t.Fatalf("Reload() = %v, %v, want true, nil", reloaded, err)
	}
	if v.String() != "x" || v.Offset() != 1 {
		t.Errorf("after reload = %q at %d, want %q at 1", v.String(), v.Offset(), "x")
	}

	v.InsertChar('!')
	writeFile(t, dir, "a.txt", "changed")
	reloaded, err = w.Reload(path)
	if err != nil || reloaded {
		t.Fatalf("Reload() of a dirty store = %v, %v, want false, nil", reloaded, err)
	}
	if v.String() != "x!" {
		t.Errorf("dirty store was overwritten: %q", v.String())
	}
	if !w.ChangedOnDisk(v) {
		t.Error("ChangedOnDisk() = false for a dirty store changed on disk")
	}

	if _, err := w.Reload(filepath.Join(dir, "other.txt")); err == nil {
		t.Error("Reload() of an unknown path should fail")
	}
}
