package rope

import (
	"testing"
	"unicode/utf8"
)

// FuzzFromString tests rope creation from arbitrary strings.
func FuzzFromString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("hello\nworld")
	f.Add("hello\r\nworld")
	f.Add("日本語")
	f.Add("emoji 🎉 test")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}

		r := FromString(s)
		if r.Len() != utf8.RuneCountInString(s) {
			t.Errorf("length mismatch: got %d, want %d", r.Len(), utf8.RuneCountInString(s))
		}
		if r.String() != s {
			t.Errorf("content mismatch")
		}
	})
}

// FuzzInsert checks Insert against a rune slice model.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "world")
	f.Add("Nöel", 2, "ü")
	f.Add("", 0, "text")
	f.Add("a\r\nb", 1, "x")
	f.Add("a\rb", 2, "\n")

	f.Fuzz(func(t *testing.T, base string, offset int, text string) {
		if !utf8.ValidString(base) || !utf8.ValidString(text) {
			return
		}
		model := []rune(base)
		offset = clampOffset(offset, len(model))

		r := FromString(base).Insert(offset, text)
		want := string(model[:offset]) + text + string(model[offset:])
		if r.String() != want {
			t.Errorf("Insert(%d, %q) = %q, want %q", offset, text, r.String(), want)
		}
		checkLines(t, r, want)
	})
}

// FuzzDelete checks Delete against a rune slice model.
func FuzzDelete(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("Hello World", 1, 3)
	f.Add("日本語テキスト", 2, 4)
	f.Add("a\rx\nb", 2, 3)

	f.Fuzz(func(t *testing.T, base string, start, end int) {
		if !utf8.ValidString(base) {
			return
		}
		model := []rune(base)
		start = clampOffset(start, len(model))
		end = clampOffset(end, len(model))
		if start > end {
			start, end = end, start
		}

		r := FromString(base).Delete(start, end)
		want := string(model[:start]) + string(model[end:])
		if r.String() != want {
			t.Errorf("Delete(%d, %d) = %q, want %q", start, end, r.String(), want)
		}
		checkLines(t, r, want)
	})
}

// FuzzLineConversion checks CharToLine and LineToChar against a scan of the runes.
func FuzzLineConversion(f *testing.F) {
	f.Add("a\nb\nc")
	f.Add("\n\n\n")
	f.Add("crlf\r\nline")
	f.Add("ü\nö\n")
	f.Add("one\rtwo\rthree")
	f.Add("\r\r\n\n\r")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		checkLines(t, FromString(s), s)
	})
}

// checkLines compares the line metrics of r with a scan of the runes of s,
// where LF, CR and CRLF each end a line.
func checkLines(t *testing.T, r Rope, s string) {
	t.Helper()
	runes := []rune(s)
	line := 0
	lineStart := 0
	for i, ch := range runes {
		if got := r.CharToLine(i); got != line {
			t.Fatalf("CharToLine(%d) = %d, want %d in %q", i, got, line, s)
		}
		if got := r.LineToChar(line); got != lineStart {
			t.Fatalf("LineToChar(%d) = %d, want %d in %q", line, got, lineStart, s)
		}
		if ch == '\n' || (ch == '\r' && (i+1 == len(runes) || runes[i+1] != '\n')) {
			line++
			lineStart = i + 1
		}
	}
	if r.LineCount() != line+1 {
		t.Errorf("LineCount() = %d, want %d in %q", r.LineCount(), line+1, s)
	}
}

// FuzzCharAt checks CharAt against a rune slice model.
func FuzzCharAt(f *testing.F) {
	f.Add("hello", 0)
	f.Add("日本語", 1)

	f.Fuzz(func(t *testing.T, s string, offset int) {
		if !utf8.ValidString(s) {
			return
		}
		model := []rune(s)
		got, ok := FromString(s).CharAt(offset)
		if offset < 0 || offset >= len(model) {
			if ok {
				t.Errorf("CharAt(%d) should fail on length %d", offset, len(model))
			}
			return
		}
		if !ok || got != model[offset] {
			t.Errorf("CharAt(%d) = %q, want %q", offset, got, model[offset])
		}
	})
}

func clampOffset(offset, n int) int {
	if offset < 0 {
		offset = -offset
	}
	if offset < 0 {
		return 0
	}
	return offset % (n + 1)
}
