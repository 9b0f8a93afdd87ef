package textstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewStore(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", s.LineCount())
	}
	if s.IsDirty() {
		t.Error("new store should be clean")
	}
	if s.Name() != Untitled {
		t.Errorf("Name() = %q, want %q", s.Name(), Untitled)
	}
	if s.Encoding().Name != "utf-8" {
		t.Errorf("Encoding() = %q, want utf-8", s.Encoding().Name)
	}
}

func TestLineQueries(t *testing.T) {
	s := FromString("text\nplops\ntoto  ")

	tests := []struct {
		line       int
		start      int
		lenNoEOL   int
		lastChar   int
		lineString string
	}{
		{0, 0, 4, 4, "text\n"},
		{1, 5, 5, 10, "plops\n"},
		{2, 11, 6, 17, "toto  "},
	}
	for _, tt := range tests {
		if got := s.LineToChar(tt.line); got != tt.start {
			t.Errorf("LineToChar(%d) = %d, want %d", tt.line, got, tt.start)
		}
		if got := s.LineLenNoEOL(tt.line); got != tt.lenNoEOL {
			t.Errorf("LineLenNoEOL(%d) = %d, want %d", tt.line, got, tt.lenNoEOL)
		}
		if got := s.LineToLastChar(tt.line); got != tt.lastChar {
			t.Errorf("LineToLastChar(%d) = %d, want %d", tt.line, got, tt.lastChar)
		}
		if got := s.Line(tt.line); got != tt.lineString {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.lineString)
		}
	}
}

func TestLineLenNoEOLTerminators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"crlf", "abc\r\nx", 3},
		{"nul", "ab\x00\nx", 2},
		{"bom", "ab\uFEFF\nx", 2},
		{"lone cr", "a\rb\n", 1},
		{"empty", "\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromString(tt.text)
			if got := s.LineLenNoEOL(0); got != tt.want {
				t.Errorf("LineLenNoEOL(0) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndexConsistency(t *testing.T) {
	s := FromString("Nöel\r\n\ttab\n\nend")
	for off := 0; off <= s.Len(); off++ {
		line := s.CharToLine(off)
		if s.LineToChar(line) > off {
			t.Errorf("LineToChar(CharToLine(%d)) > %d", off, off)
		}
		// Offsets past the last content char are terminator characters.
		if off > s.LineToLastChar(line) {
			r, ok := s.CharAt(off - 1)
			if !ok || !IsEOLChar(r) {
				t.Errorf("offset %d is past LineToLastChar(%d) on a content char", off, line)
			}
		}
	}
}

func TestInsertRemove(t *testing.T) {
	s := FromString("Hello World")

	if err := s.Remove(1, 3); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if s.String() != "Hlo World" {
		t.Errorf("String() = %q, want %q", s.String(), "Hlo World")
	}
	if !s.IsDirty() {
		t.Error("store should be dirty after Remove")
	}

	if err := s.Insert(0, "¡"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if s.String() != "¡Hlo World" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}

func TestMutationErrors(t *testing.T) {
	s := FromString("abc")

	if err := s.Insert(4, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(4) error = %v, want ErrOffsetOutOfRange", err)
	}
	if err := s.Insert(-1, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(-1) error = %v, want ErrOffsetOutOfRange", err)
	}
	if err := s.Remove(2, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Remove(2, 1) error = %v, want ErrRangeInvalid", err)
	}
	if err := s.Remove(1, 9); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Remove(1, 9) error = %v, want ErrOffsetOutOfRange", err)
	}
	if s.String() != "abc" || s.IsDirty() {
		t.Errorf("failed mutations changed the store: %q dirty=%v", s.String(), s.IsDirty())
	}
}

func TestCRLineBreaks(t *testing.T) {
	s := FromString("one\rtwo\rthree")
	if s.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", s.LineCount())
	}
	for line, want := range []int{3, 7, 13} {
		if got := s.LineToLastChar(line); got != want {
			t.Errorf("LineToLastChar(%d) = %d, want %d", line, got, want)
		}
	}
	if got := s.LineLenNoEOL(1); got != 3 {
		t.Errorf("LineLenNoEOL(1) = %d, want 3", got)
	}

	if err := s.Insert(3, "\r"); err != nil {
		t.Fatal(err)
	}
	if s.LineCount() != 4 || s.CharToLine(4) != 1 || s.LineToChar(2) != 5 {
		t.Errorf("after insert: LineCount() %d, CharToLine(4) %d, LineToChar(2) %d, want 4, 1, 5",
			s.LineCount(), s.CharToLine(4), s.LineToChar(2))
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := FromString("before")
	snap := s.Snapshot()

	if err := s.Insert(6, " after"); err != nil {
		t.Fatal(err)
	}
	if snap.String() != "before" {
		t.Errorf("snapshot changed: %q", snap.String())
	}

	s.Restore(snap)
	if s.String() != "before" {
		t.Errorf("Restore() content = %q", s.String())
	}
	if s.IsDirty() {
		t.Error("restoring the loaded content should leave the store clean")
	}

	edited := s.Snapshot()
	if err := s.Insert(0, "x"); err != nil {
		t.Fatal(err)
	}
	s.Restore(edited)
	if s.IsDirty() {
		t.Error("the restored rope is still the loaded one")
	}

	if err := s.Insert(0, "x"); err != nil {
		t.Fatal(err)
	}
	s.Restore(s.Snapshot().Insert(0, "y"))
	if !s.IsDirty() {
		t.Error("restoring other content should mark the store dirty")
	}
}

func TestRestoreAfterSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	s := FromString("one", WithPath(path))
	loaded := s.Snapshot()
	if err := s.Insert(3, " two"); err != nil {
		t.Fatal(err)
	}
	saved := s.Snapshot()
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	s.Restore(loaded)
	if !s.IsDirty() {
		t.Error("content older than the last save should be dirty")
	}
	s.Restore(saved)
	if s.IsDirty() {
		t.Error("the saved content should be clean")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		encoding string
		text     string
	}{
		{"utf-8", []byte("héllo\nwörld"), "utf-8", "héllo\nwörld"},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "bom"...), "utf-8", "bom"},
		{"utf-16le", []byte{0xFF, 0xFE, 'H', 0, 'i', 0}, "utf-16le", "Hi"},
		{"utf-16be", []byte{0xFE, 0xFF, 0, 'H', 0, 'i'}, "utf-16be", "Hi"},
		{"latin", []byte("caf\xe9"), "windows-1252", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file.txt")
			if err := os.WriteFile(path, tt.content, 0o644); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if s.String() != tt.text {
				t.Errorf("String() = %q, want %q", s.String(), tt.text)
			}
			if s.Encoding().Name != tt.encoding {
				t.Errorf("Encoding() = %q, want %q", s.Encoding().Name, tt.encoding)
			}
			if s.Name() != "file.txt" || s.Extension() != "txt" {
				t.Errorf("Name() = %q, Extension() = %q", s.Name(), s.Extension())
			}

			if err := s.Insert(0, ""); err != nil {
				t.Fatal(err)
			}
			if err := s.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.content) {
				t.Errorf("saved bytes = %v, want %v", got, tt.content)
			}
		})
	}
}

func TestDecodeInvalidBytes(t *testing.T) {
	text, enc := Decode([]byte{0xFF, 'a'})
	if enc.Name == "" {
		t.Error("Decode() returned an unnamed encoding")
	}
	if len([]rune(text)) != 2 {
		t.Errorf("Decode() = %q, want two characters", text)
	}
}

func TestEncodeUnsupportedCharacter(t *testing.T) {
	enc, err := EncodingByName("latin1")
	if err != nil {
		t.Fatalf("EncodingByName() error = %v", err)
	}
	if enc.Name != "windows-1252" {
		t.Errorf("EncodingByName(latin1).Name = %q, want windows-1252", enc.Name)
	}
	out := enc.Encode("a世b")
	if len(out) != 3 || out[0] != 'a' || out[2] != 'b' {
		t.Errorf("Encode() = %v, want a replacement byte between a and b", out)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	s := FromString("x")
	if err := s.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save() error = %v, want ErrNoPath", err)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file.txt")
	s := FromString("x", WithPath(path))
	if err := s.Insert(1, "y"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err == nil {
		t.Fatal("Save() into a missing directory should fail")
	}
	if !s.IsDirty() {
		t.Error("failed Save() should leave the store dirty")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed Save() created %s", path)
	}
}

func TestSaveAsClearsDirty(t *testing.T) {
	s := FromString("x")
	if err := s.Insert(1, "y"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.go")
	if err := s.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if s.IsDirty() {
		t.Error("SaveAs() should clear dirty")
	}
	if s.Name() != "out.go" || s.Extension() != "go" {
		t.Errorf("Name() = %q, Extension() = %q", s.Name(), s.Extension())
	}
	got, _ := os.ReadFile(path)
	if string(got) != "xy" {
		t.Errorf("file content = %q, want %q", got, "xy")
	}
}

func TestSavePreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("echo"), 0o755); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if s.String() != "two" || s.IsDirty() {
		t.Errorf("Reload() = %q dirty=%v", s.String(), s.IsDirty())
	}
}
