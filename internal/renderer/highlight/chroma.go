package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaHighlighter adapts a chroma lexer. Each line is lexed on its own.
// For lexers that know C-style block comments, a comment left open at the
// end of a line is carried to the next one as LexerStateBlockComment.
type ChromaHighlighter struct {
	lexer         chroma.Lexer
	language      string
	extensions    []string
	blockComments bool
}

// NewChromaHighlighter wraps lexer.
func NewChromaHighlighter(lexer chroma.Lexer) *ChromaHighlighter {
	cfg := lexer.Config()
	var exts []string
	for _, pattern := range cfg.Filenames {
		if ext, ok := strings.CutPrefix(pattern, "*"); ok && strings.HasPrefix(ext, ".") && !strings.ContainsAny(ext, "*?[") {
			exts = append(exts, ext)
		}
	}
	h := &ChromaHighlighter{
		lexer:      chroma.Coalesce(lexer),
		language:   strings.ToLower(cfg.Name),
		extensions: exts,
	}
	h.blockComments = h.lexesBlockComment()
	return h
}

const (
	commentOpen  = "/*"
	commentClose = "*/"
)

// lexesBlockComment reports whether the lexer reads a closed C-style block
// comment as one comment token.
func (h *ChromaHighlighter) lexesBlockComment() bool {
	const sample = commentOpen + " x " + commentClose
	it, err := h.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, sample)
	if err != nil {
		return false
	}
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		return tok.Type.InCategory(chroma.Comment) && strings.TrimSpace(tok.Value) == sample
	}
	return false
}

// ChromaByName returns a highlighter for a chroma lexer name or alias.
func ChromaByName(name string) (*ChromaHighlighter, bool) {
	l := lexers.Get(name)
	if l == nil {
		return nil, false
	}
	return NewChromaHighlighter(l), true
}

// ChromaForFile picks a lexer by file name, then by analysing content.
func ChromaForFile(filename, content string) (*ChromaHighlighter, bool) {
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return NewChromaHighlighter(l), true
		}
	}
	if content != "" {
		if l := lexers.Analyse(content); l != nil {
			return NewChromaHighlighter(l), true
		}
	}
	return nil, false
}

// Language returns the lower-cased chroma lexer name.
func (h *ChromaHighlighter) Language() string {
	return h.language
}

// FileExtensions returns the plain "*.ext" patterns of the lexer.
func (h *ChromaHighlighter) FileExtensions() []string {
	return h.extensions
}

// HighlightLine lexes line. prev only matters when it is
// LexerStateBlockComment and the lexer knows block comments.
func (h *ChromaHighlighter) HighlightLine(line string, prev LexerState) ([]Token, LexerState) {
	var tokens []Token
	pos := 0
	if h.blockComments && prev == LexerStateBlockComment {
		idx := strings.Index(line, commentClose)
		if idx < 0 {
			if line == "" {
				return nil, prev
			}
			return []Token{{Type: TokenComment, Start: 0, End: len(line)}}, prev
		}
		pos = idx + len(commentClose)
		tokens = append(tokens, Token{Type: TokenComment, Start: 0, End: pos})
	}

	rest, state := h.lex(line, pos)
	return append(tokens, rest...), state
}

// lex tokenizes line[from:]. A block comment still open at the end of the
// line styles the rest of it and sets LexerStateBlockComment.
func (h *ChromaHighlighter) lex(line string, from int) ([]Token, LexerState) {
	if from >= len(line) {
		return nil, LexerStateNormal
	}
	it, err := h.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, line[from:])
	if err != nil {
		return nil, LexerStateNormal
	}
	var tokens []Token
	pos := from
	for _, tok := range it.Tokens() {
		if pos >= len(line) {
			break
		}
		if h.blockComments && opensComment(line[pos:], tok) {
			return append(tokens, Token{Type: TokenComment, Start: pos, End: len(line)}), LexerStateBlockComment
		}
		end := min(pos+len(tok.Value), len(line))
		if typ := tokenTypeFromChroma(tok.Type); typ != TokenNone {
			tokens = append(tokens, Token{Type: typ, Start: pos, End: end})
		}
		pos = end
	}
	return tokens, LexerStateNormal
}

// opensComment reports whether tok, which starts at the beginning of text,
// opens a block comment that the line does not close.
func opensComment(text string, tok chroma.Token) bool {
	if !strings.HasPrefix(text, commentOpen) || tok.Type.InSubCategory(chroma.LiteralString) {
		return false
	}
	if !tok.Type.InCategory(chroma.Comment) {
		return true
	}
	value, ok := strings.CutPrefix(tok.Value, commentOpen)
	return ok && !strings.Contains(value, commentClose)
}

// tokenTypeFromChroma folds chroma's token hierarchy onto TokenType.
func tokenTypeFromChroma(tt chroma.TokenType) TokenType {
	switch tt {
	case chroma.Error:
		return TokenError
	case chroma.KeywordDeclaration, chroma.KeywordNamespace:
		return TokenDeclaration
	case chroma.KeywordConstant, chroma.NameConstant, chroma.NameBuiltinPseudo:
		return TokenConstant
	case chroma.KeywordType, chroma.NameClass:
		return TokenTypeName
	case chroma.NameBuiltin:
		return TokenBuiltin
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return TokenFunction
	case chroma.NameDecorator, chroma.NameAttribute:
		return TokenMeta
	case chroma.LiteralStringEscape:
		return TokenEscape
	case chroma.LiteralStringBacktick:
		return TokenCode
	case chroma.GenericHeading, chroma.GenericSubheading:
		return TokenHeading
	case chroma.GenericEmph:
		return TokenEmphasis
	case chroma.GenericStrong:
		return TokenStrong
	}
	switch {
	case tt.InSubCategory(chroma.CommentPreproc):
		return TokenMeta
	case tt.InCategory(chroma.Comment):
		return TokenComment
	case tt.InCategory(chroma.Keyword):
		return TokenKeyword
	case tt.InSubCategory(chroma.LiteralNumber):
		return TokenNumber
	case tt.InSubCategory(chroma.LiteralString):
		return TokenString
	case tt.InCategory(chroma.Operator):
		return TokenOperator
	case tt.InCategory(chroma.Punctuation):
		return TokenPunctuation
	}
	return TokenNone
}

// chromaTokenFor is the chroma type whose style a theme borrows for each
// TokenType.
var chromaTokenFor = map[TokenType]chroma.TokenType{
	TokenComment:     chroma.Comment,
	TokenString:      chroma.LiteralString,
	TokenEscape:      chroma.LiteralStringEscape,
	TokenNumber:      chroma.LiteralNumber,
	TokenKeyword:     chroma.Keyword,
	TokenDeclaration: chroma.KeywordDeclaration,
	TokenConstant:    chroma.KeywordConstant,
	TokenTypeName:    chroma.KeywordType,
	TokenBuiltin:     chroma.NameBuiltin,
	TokenFunction:    chroma.NameFunction,
	TokenOperator:    chroma.Operator,
	TokenPunctuation: chroma.Punctuation,
	TokenMeta:        chroma.CommentPreproc,
	TokenHeading:     chroma.GenericHeading,
	TokenEmphasis:    chroma.GenericEmph,
	TokenStrong:      chroma.GenericStrong,
	TokenCode:        chroma.LiteralStringBacktick,
	TokenLink:        chroma.NameTag,
	TokenError:       chroma.Error,
}
