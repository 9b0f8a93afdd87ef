package highlight

// TokenType is the semantic class of a token.
type TokenType uint8

// Token classes understood by themes.
const (
	TokenNone TokenType = iota
	TokenComment
	TokenString
	TokenEscape
	TokenNumber
	TokenKeyword
	TokenDeclaration
	TokenConstant
	TokenTypeName
	TokenBuiltin
	TokenFunction
	TokenOperator
	TokenPunctuation
	TokenMeta
	TokenHeading
	TokenEmphasis
	TokenStrong
	TokenCode
	TokenLink
	TokenError
	tokenTypeCount
)

var tokenTypeNames = [tokenTypeCount]string{
	TokenNone:        "none",
	TokenComment:     "comment",
	TokenString:      "string",
	TokenEscape:      "escape",
	TokenNumber:      "number",
	TokenKeyword:     "keyword",
	TokenDeclaration: "declaration",
	TokenConstant:    "constant",
	TokenTypeName:    "type",
	TokenBuiltin:     "builtin",
	TokenFunction:    "function",
	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",
	TokenMeta:        "meta",
	TokenHeading:     "heading",
	TokenEmphasis:    "emphasis",
	TokenStrong:      "strong",
	TokenCode:        "code",
	TokenLink:        "link",
	TokenError:       "error",
}

// String returns the lower-case name of the token class.
func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// TokenTypeFromString is the inverse of String.
func TokenTypeFromString(name string) (TokenType, bool) {
	for i, n := range tokenTypeNames {
		if n == name {
			return TokenType(i), true
		}
	}
	return TokenNone, false
}

// Token is a classified byte range [Start, End) of a line.
type Token struct {
	Type  TokenType
	Start int
	End   int
}

// Len returns the byte length of the token.
func (t Token) Len() int {
	return t.End - t.Start
}

// LexerState is the tokenizer state at a line boundary.
type LexerState uint8

// Lexer states. Anything other than LexerStateNormal means a multi-line
// construct is still open at the end of the line.
const (
	LexerStateNormal LexerState = iota
	LexerStateBlockComment
	LexerStateStringDouble
	LexerStateStringSingle
	LexerStateStringBacktick
	LexerStateCodeFence
)
