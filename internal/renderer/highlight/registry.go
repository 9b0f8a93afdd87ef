package highlight

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Highlighter tokenizes source one line at a time.
type Highlighter interface {
	// HighlightLine tokenizes line, which carries no trailing LF. prev is
	// the state at the end of the previous line; the returned state is the
	// one at the end of this line.
	HighlightLine(line string, prev LexerState) ([]Token, LexerState)

	// Language returns the language name.
	Language() string

	// FileExtensions returns the handled extensions, dot included.
	FileExtensions() []string
}

// PlainTextLanguage is the language of the highlighter that styles nothing.
const PlainTextLanguage = "plain text"

type plainText struct{}

func (plainText) HighlightLine(string, LexerState) ([]Token, LexerState) {
	return nil, LexerStateNormal
}

func (plainText) Language() string         { return PlainTextLanguage }
func (plainText) FileExtensions() []string { return nil }

// PlainText returns a highlighter that produces no tokens.
func PlainText() Highlighter {
	return plainText{}
}

// Registry resolves highlighters by language or file.
type Registry struct {
	mu          sync.RWMutex
	byLanguage  map[string]Highlighter
	byExtension map[string]Highlighter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]Highlighter),
		byExtension: make(map[string]Highlighter),
	}
}

// DefaultRegistry returns a registry holding the built-in highlighters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltinHighlighters(r)
	return r
}

// Register adds h, replacing any highlighter for the same language or
// extensions.
func (r *Registry) Register(h Highlighter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[strings.ToLower(h.Language())] = h
	for _, ext := range h.FileExtensions() {
		r.byExtension[normalizeExt(ext)] = h
	}
}

// ByLanguage returns the registered highlighter for language, falling back
// to a chroma lexer of that name.
func (r *Registry) ByLanguage(language string) (Highlighter, bool) {
	r.mu.RLock()
	h, ok := r.byLanguage[strings.ToLower(language)]
	r.mu.RUnlock()
	if ok {
		return h, true
	}
	if strings.EqualFold(language, PlainTextLanguage) {
		return PlainText(), true
	}
	if ch, ok := ChromaByName(language); ok {
		return ch, true
	}
	return nil, false
}

// ByExtension returns the registered highlighter for ext. The leading dot
// is optional.
func (r *Registry) ByExtension(ext string) (Highlighter, bool) {
	if ext == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byExtension[normalizeExt(ext)]
	return h, ok
}

// Detect picks the highlighter for a file: a registered one by extension,
// then a chroma lexer by name or content, then plain text. It never
// returns nil.
func (r *Registry) Detect(filename, content string) Highlighter {
	if h, ok := r.ByExtension(filepath.Ext(filename)); ok {
		return h
	}
	if h, ok := ChromaForFile(filepath.Base(filename), content); ok {
		return h
	}
	return PlainText()
}

// Languages returns the registered language names in order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
