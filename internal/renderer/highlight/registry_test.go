package highlight

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/ropedit/internal/renderer/core"
)

func TestRegistryByExtension(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		ext  string
		want string
		ok   bool
	}{
		{".go", "go", true},
		{"go", "go", true},
		{".PY", "python", true},
		{".tsx", "javascript", true},
		{".md", "markdown", true},
		{".xyz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			h, ok := r.ByExtension(tt.ext)
			if ok != tt.ok {
				t.Fatalf("ByExtension(%q) ok = %v, want %v", tt.ext, ok, tt.ok)
			}
			if ok && h.Language() != tt.want {
				t.Errorf("ByExtension(%q) = %q, want %q", tt.ext, h.Language(), tt.want)
			}
		})
	}
}

func TestRegistryLanguages(t *testing.T) {
	want := []string{"go", "javascript", "markdown", "python", "rust"}
	if diff := cmp.Diff(want, DefaultRegistry().Languages()); diff != "" {
		t.Errorf("Languages() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryDetect(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"builtin by extension", "/tmp/main.go", "", "go"},
		{"chroma by name", "/tmp/prog.c", "", "c"},
		{"unknown", "/tmp/notes.unknownext", "", PlainTextLanguage},
		{"untitled", "", "", PlainTextLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Detect(tt.filename, tt.content).Language(); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestRegistryByLanguageFallsBackToChroma(t *testing.T) {
	r := DefaultRegistry()
	if h, ok := r.ByLanguage("Go"); !ok || h.Language() != "go" {
		t.Errorf("ByLanguage(Go) = %v, %v", h, ok)
	}
	if h, ok := r.ByLanguage("c"); !ok {
		t.Error("ByLanguage(c) not found")
	} else if _, isChroma := h.(*ChromaHighlighter); !isChroma {
		t.Errorf("ByLanguage(c) = %T, want *ChromaHighlighter", h)
	}
	if _, ok := r.ByLanguage("no-such-language"); ok {
		t.Error("ByLanguage(no-such-language) should fail")
	}
	if h, ok := r.ByLanguage(PlainTextLanguage); !ok || h.Language() != PlainTextLanguage {
		t.Errorf("ByLanguage(plain text) = %v, %v", h, ok)
	}
}

func TestChromaHighlighter(t *testing.T) {
	h, ok := ChromaByName("c")
	if !ok {
		t.Fatal("ChromaByName(c) not found")
	}
	if h.Language() != "c" {
		t.Errorf("Language() = %q, want c", h.Language())
	}
	found := false
	for _, ext := range h.FileExtensions() {
		if ext == ".c" {
			found = true
		}
	}
	if !found {
		t.Errorf("FileExtensions() = %v, want to contain .c", h.FileExtensions())
	}

	line := "int x; // hi"
	tokens, state := h.HighlightLine(line, LexerStateNormal)
	if state != LexerStateNormal {
		t.Errorf("state = %v, want normal", state)
	}
	for _, tok := range tokens {
		if tok.End > len(line) || tok.Start >= tok.End {
			t.Errorf("token %+v out of line bounds", tok)
		}
	}
	if len(tokens) == 0 || tokens[0] != (Token{Type: TokenTypeName, Start: 0, End: 3}) {
		t.Errorf("tokens = %+v, want int as a type name first", tokens)
	}
}

func TestChromaBlockCommentSpansLines(t *testing.T) {
	h, ok := ChromaByName("c")
	if !ok {
		t.Fatal("ChromaByName(c) not found")
	}

	tokens, state := h.HighlightLine("int a; /* open", LexerStateNormal)
	if state != LexerStateBlockComment {
		t.Fatalf("state after opening line = %v, want block comment", state)
	}
	if last := tokens[len(tokens)-1]; last != (Token{Type: TokenComment, Start: 7, End: 14}) {
		t.Errorf("last token = %+v, want the open comment", last)
	}

	tokens, state = h.HighlightLine("still", state)
	if diff := cmp.Diff([]Token{{Type: TokenComment, Start: 0, End: 5}}, tokens); diff != "" || state != LexerStateBlockComment {
		t.Errorf("inner line state %v, tokens mismatch (-want +got):\n%s", state, diff)
	}

	tokens, state = h.HighlightLine("done */ int b;", state)
	if state != LexerStateNormal {
		t.Errorf("state after closing line = %v, want normal", state)
	}
	if len(tokens) < 2 || tokens[0] != (Token{Type: TokenComment, Start: 0, End: 7}) {
		t.Fatalf("tokens = %+v, want the comment tail first", tokens)
	}
	found := false
	for _, tok := range tokens {
		if tok == (Token{Type: TokenTypeName, Start: 8, End: 11}) {
			found = true
		}
	}
	if !found {
		t.Errorf("tokens = %+v, want int lexed after the comment", tokens)
	}

	if _, state := h.HighlightLine("a /* b */ c", LexerStateNormal); state != LexerStateNormal {
		t.Errorf("closed comment left state %v", state)
	}
}

func TestChromaWithoutBlockComments(t *testing.T) {
	h, ok := ChromaByName("python")
	if !ok {
		t.Fatal("ChromaByName(python) not found")
	}
	if _, state := h.HighlightLine("x = 1 /* y", LexerStateNormal); state != LexerStateNormal {
		t.Errorf("state = %v, want normal", state)
	}
	tokens, _ := h.HighlightLine("def f():", LexerStateBlockComment)
	if len(tokens) > 0 && tokens[0].Type == TokenComment {
		t.Errorf("tokens = %+v, block state should be ignored", tokens)
	}
}

func TestTokenTypeFromChroma(t *testing.T) {
	for typ, ct := range chromaTokenFor {
		if typ == TokenLink {
			continue
		}
		if got := tokenTypeFromChroma(ct); got != typ {
			t.Errorf("tokenTypeFromChroma(%v) = %v, want %v", ct, got, typ)
		}
	}
}

func TestLookupTheme(t *testing.T) {
	if th, ok := LookupTheme(""); !ok || th.Name != DefaultThemeName {
		t.Errorf("LookupTheme(\"\") = %v, %v", th, ok)
	}
	if th, ok := LookupTheme("Light"); !ok || th.Name != "light" {
		t.Errorf("LookupTheme(Light) = %v, %v", th, ok)
	}
	th, ok := LookupTheme("monokai")
	if !ok {
		t.Fatal("LookupTheme(monokai) not found")
	}
	if want := core.ColorFromRGB(0x27, 0x28, 0x22); th.Background != want {
		t.Errorf("monokai Background = %v, want %v", th.Background, want)
	}
	if len(th.Tokens) != len(chromaTokenFor) {
		t.Errorf("monokai has %d token styles, want %d", len(th.Tokens), len(chromaTokenFor))
	}
	if _, ok := LookupTheme("no-such-theme"); ok {
		t.Error("LookupTheme(no-such-theme) should fail")
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	for _, want := range []string{DefaultThemeName, "light", "monokai"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ThemeNames() lacks %q", want)
		}
	}
}

func TestThemeStyleFor(t *testing.T) {
	th := DefaultTheme()
	if got := th.StyleFor(TokenNone); got != th.Default() {
		t.Errorf("StyleFor(none) = %v, want default %v", got, th.Default())
	}
	got := th.StyleFor(TokenComment)
	if !got.Attributes.Has(core.AttrItalic) {
		t.Errorf("StyleFor(comment) = %v, want italic", got)
	}
	if got.Foreground == th.Foreground {
		t.Error("comment should not use the default foreground")
	}
}
