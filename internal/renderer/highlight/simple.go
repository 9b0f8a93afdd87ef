package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule classifies every match of a regular expression.
type Rule struct {
	Pattern *regexp.Regexp
	Type    TokenType
}

// blockRule is a construct that may span lines, such as a block comment.
type blockRule struct {
	open  string
	close string
	typ   TokenType
	state LexerState
}

// SimpleHighlighter is a regular-expression highlighter with keyword tables
// and multi-line blocks. Matches are taken leftmost first; at equal start
// positions blocks win over rules and earlier rules win over later ones.
type SimpleHighlighter struct {
	language   string
	extensions []string
	blocks     []blockRule
	rules      []Rule
	keywords   map[string]TokenType
}

// NewSimpleHighlighter creates an empty highlighter for a language.
func NewSimpleHighlighter(language string, extensions ...string) *SimpleHighlighter {
	return &SimpleHighlighter{
		language:   language,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// AddRule adds a single-line pattern. It panics if pattern does not compile.
func (h *SimpleHighlighter) AddRule(pattern string, typ TokenType) *SimpleHighlighter {
	h.rules = append(h.rules, Rule{Pattern: regexp.MustCompile(pattern), Type: typ})
	return h
}

// AddKeywords classifies whole words.
func (h *SimpleHighlighter) AddKeywords(typ TokenType, words ...string) *SimpleHighlighter {
	for _, w := range words {
		h.keywords[w] = typ
	}
	return h
}

// AddBlock adds a construct delimited by open and close that may continue
// past the end of a line. state must be unique per highlighter.
func (h *SimpleHighlighter) AddBlock(open, close string, typ TokenType, state LexerState) *SimpleHighlighter {
	h.blocks = append(h.blocks, blockRule{open: open, close: close, typ: typ, state: state})
	return h
}

// Language returns the language name.
func (h *SimpleHighlighter) Language() string {
	return h.language
}

// FileExtensions returns the handled extensions, dot included.
func (h *SimpleHighlighter) FileExtensions() []string {
	return h.extensions
}

// candidate is a potential token found while scanning a line.
type candidate struct {
	start, end int
	priority   int
	block      *blockRule
	typ        TokenType
}

// HighlightLine tokenizes line, continuing any block left open by prev.
func (h *SimpleHighlighter) HighlightLine(line string, prev LexerState) ([]Token, LexerState) {
	var tokens []Token
	pos := 0

	if prev != LexerStateNormal {
		if b := h.blockFor(prev); b != nil {
			idx := strings.Index(line, b.close)
			if idx < 0 {
				if len(line) == 0 {
					return nil, prev
				}
				return []Token{{Type: b.typ, Start: 0, End: len(line)}}, prev
			}
			pos = idx + len(b.close)
			tokens = append(tokens, Token{Type: b.typ, Start: 0, End: pos})
		}
	}

	state := LexerStateNormal
	for _, c := range h.candidates(line, pos) {
		if c.start < pos {
			continue
		}
		end := c.end
		if c.block != nil {
			idx := strings.Index(line[c.start+len(c.block.open):], c.block.close)
			if idx < 0 {
				end = len(line)
				state = c.block.state
			} else {
				end = c.start + len(c.block.open) + idx + len(c.block.close)
			}
		}
		tokens = h.appendWords(tokens, line, pos, c.start)
		tokens = append(tokens, Token{Type: c.typ, Start: c.start, End: end})
		pos = end
		if state != LexerStateNormal {
			return tokens, state
		}
	}
	return h.appendWords(tokens, line, pos, len(line)), state
}

// candidates lists every block opening and rule match at or after from,
// ordered by start and then priority.
func (h *SimpleHighlighter) candidates(line string, from int) []candidate {
	var out []candidate
	for i := range h.blocks {
		b := &h.blocks[i]
		for at := from; at < len(line); {
			idx := strings.Index(line[at:], b.open)
			if idx < 0 {
				break
			}
			start := at + idx
			out = append(out, candidate{start: start, end: start + len(b.open), priority: i, block: b, typ: b.typ})
			at = start + len(b.open)
		}
	}
	for i, r := range h.rules {
		for _, m := range r.Pattern.FindAllStringIndex(line, -1) {
			if m[0] < from || m[1] <= m[0] {
				continue
			}
			out = append(out, candidate{start: m[0], end: m[1], priority: len(h.blocks) + i, typ: r.Type})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].start != out[j].start {
			return out[i].start < out[j].start
		}
		return out[i].priority < out[j].priority
	})
	return out
}

// appendWords adds keyword tokens found in line[from:to].
func (h *SimpleHighlighter) appendWords(tokens []Token, line string, from, to int) []Token {
	if len(h.keywords) == 0 {
		return tokens
	}
	i := from
	for i < to {
		r, size := utf8.DecodeRuneInString(line[i:to])
		if !isIdentStart(r) {
			i += size
			continue
		}
		start := i
		for i < to {
			r, size = utf8.DecodeRuneInString(line[i:to])
			if !isIdentStart(r) && !unicode.IsDigit(r) {
				break
			}
			i += size
		}
		if typ, ok := h.keywords[line[start:i]]; ok {
			tokens = append(tokens, Token{Type: typ, Start: start, End: i})
		}
	}
	return tokens
}

func (h *SimpleHighlighter) blockFor(state LexerState) *blockRule {
	for i := range h.blocks {
		if h.blocks[i].state == state {
			return &h.blocks[i]
		}
	}
	return nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// GoHighlighter returns the built-in Go highlighter.
func GoHighlighter() *SimpleHighlighter {
	h := NewSimpleHighlighter("go", ".go")
	h.AddBlock("/*", "*/", TokenComment, LexerStateBlockComment)
	h.AddBlock("`", "`", TokenString, LexerStateStringBacktick)

	h.AddRule(`//.*`, TokenComment)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)+'`, TokenString)
	h.AddRule(`\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|\d[\d_]*(?:\.\d*)?(?:[eE][+-]?\d+)?i?)\b`, TokenNumber)

	h.AddKeywords(TokenKeyword,
		"break", "case", "continue", "default", "defer", "else", "fallthrough",
		"for", "go", "goto", "if", "import", "package", "range", "return",
		"select", "switch")
	h.AddKeywords(TokenDeclaration,
		"chan", "const", "func", "interface", "map", "struct", "type", "var")
	h.AddKeywords(TokenConstant, "true", "false", "nil", "iota")
	h.AddKeywords(TokenTypeName,
		"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr")
	return h
}

// PythonHighlighter returns the built-in Python highlighter.
func PythonHighlighter() *SimpleHighlighter {
	h := NewSimpleHighlighter("python", ".py", ".pyi", ".pyw")
	h.AddBlock(`"""`, `"""`, TokenString, LexerStateStringDouble)
	h.AddBlock(`'''`, `'''`, TokenString, LexerStateStringSingle)

	h.AddRule(`#.*`, TokenComment)
	h.AddRule(`[rbfu]?"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule(`[rbfu]?'(?:[^'\\]|\\.)*'`, TokenString)
	h.AddRule(`\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|\d[\d_]*(?:\.\d*)?(?:[eE][+-]?\d+)?j?)\b`, TokenNumber)
	h.AddRule(`^\s*@[\w.]+`, TokenMeta)

	h.AddKeywords(TokenKeyword,
		"and", "as", "assert", "async", "await", "break", "case", "continue",
		"del", "elif", "else", "except", "finally", "for", "from", "global",
		"if", "import", "in", "is", "match", "nonlocal", "not", "or", "pass",
		"raise", "return", "try", "while", "with", "yield")
	h.AddKeywords(TokenDeclaration, "class", "def", "lambda")
	h.AddKeywords(TokenConstant, "True", "False", "None")
	h.AddKeywords(TokenBuiltin,
		"abs", "all", "any", "dict", "enumerate", "filter", "float", "int",
		"isinstance", "len", "list", "map", "max", "min", "open", "print",
		"range", "repr", "set", "sorted", "str", "sum", "super", "tuple", "type", "zip")
	return h
}

// JavaScriptHighlighter returns the built-in JavaScript and TypeScript highlighter.
func JavaScriptHighlighter() *SimpleHighlighter {
	h := NewSimpleHighlighter("javascript", ".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx")
	h.AddBlock("/*", "*/", TokenComment, LexerStateBlockComment)
	h.AddBlock("`", "`", TokenString, LexerStateStringBacktick)

	h.AddRule(`//.*`, TokenComment)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	h.AddRule(`\b(?:0[xX][0-9a-fA-F]+|\d+(?:\.\d*)?(?:[eE][+-]?\d+)?n?)\b`, TokenNumber)
	h.AddRule(`@\w+`, TokenMeta)

	h.AddKeywords(TokenKeyword,
		"as", "async", "await", "break", "case", "catch", "continue", "debugger",
		"default", "delete", "do", "else", "export", "finally", "for", "from",
		"if", "import", "in", "instanceof", "new", "of", "return", "switch",
		"throw", "try", "typeof", "void", "while", "with", "yield")
	h.AddKeywords(TokenDeclaration,
		"class", "const", "enum", "extends", "function", "interface", "let",
		"type", "var")
	h.AddKeywords(TokenConstant, "true", "false", "null", "undefined", "this", "NaN", "Infinity")
	return h
}

// RustHighlighter returns the built-in Rust highlighter.
func RustHighlighter() *SimpleHighlighter {
	h := NewSimpleHighlighter("rust", ".rs")
	h.AddBlock("/*", "*/", TokenComment, LexerStateBlockComment)

	h.AddRule(`//.*`, TokenComment)
	h.AddRule(`b?"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	h.AddRule(`\b\d[\d_]*(?:\.[\d_]+)?(?:[eE][+-]?\d+)?(?:[iu](?:8|16|32|64|128|size)|f32|f64)?\b`, TokenNumber)
	h.AddRule(`#!?\[[^\]]*\]`, TokenMeta)
	h.AddRule(`\b[a-z_]\w*!`, TokenBuiltin)

	h.AddKeywords(TokenKeyword,
		"as", "async", "await", "break", "continue", "crate", "dyn", "else",
		"extern", "for", "if", "in", "loop", "match", "move", "mut", "pub",
		"ref", "return", "self", "Self", "super", "unsafe", "use", "where", "while")
	h.AddKeywords(TokenDeclaration,
		"const", "enum", "fn", "impl", "let", "mod", "static", "struct", "trait", "type")
	h.AddKeywords(TokenConstant, "true", "false", "None", "Some", "Ok", "Err")
	h.AddKeywords(TokenTypeName,
		"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize",
		"str", "u8", "u16", "u32", "u64", "u128", "usize", "String", "Vec",
		"Option", "Result", "Box")
	return h
}

// MarkdownHighlighter returns the built-in Markdown highlighter.
func MarkdownHighlighter() *SimpleHighlighter {
	h := NewSimpleHighlighter("markdown", ".md", ".markdown")
	h.AddBlock("```", "```", TokenCode, LexerStateCodeFence)

	h.AddRule(`^#{1,6}\s.*`, TokenHeading)
	h.AddRule(`^>.*`, TokenComment)
	h.AddRule(`^\s*(?:[-*+]|\d+\.)\s`, TokenPunctuation)
	h.AddRule("`[^`]+`", TokenCode)
	h.AddRule(`\*\*[^*]+\*\*|__[^_]+__`, TokenStrong)
	h.AddRule(`\*[^*]+\*|_[^_]+_`, TokenEmphasis)
	h.AddRule(`!?\[[^\]]*\]\([^)]*\)`, TokenLink)
	return h
}

// RegisterBuiltinHighlighters registers the built-in highlighters in r.
func RegisterBuiltinHighlighters(r *Registry) {
	r.Register(GoHighlighter())
	r.Register(PythonHighlighter())
	r.Register(JavaScriptHighlighter())
	r.Register(RustHighlighter())
	r.Register(MarkdownHighlighter())
}
