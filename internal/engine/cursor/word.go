package cursor

import "strings"

// wordDelimiters separate words for double-click selection.
const wordDelimiters = " `~!@#$%^&*()-=+[{]}\\|;:'\",.<>/?"

// LineReader is the read side of a document used by word selection.
type LineReader interface {
	CharToLine(offset int) int
	LineToChar(line int) int
	Line(line int) string
}

// IsWordDelimiter reports whether r ends a word.
func IsWordDelimiter(r rune) bool {
	return strings.ContainsRune(wordDelimiters, r)
}

// SelectWord returns the word around offset. The line holding offset is
// scanned left to right; each delimiter closes a candidate span, and the
// first span containing offset is returned. A word with no delimiter after
// it on its line is not matched.
func SelectWord(text LineReader, offset int) (Selection, bool) {
	line := text.CharToLine(offset)
	start := text.LineToChar(line)
	end := start
	for _, r := range text.Line(line) {
		if IsWordDelimiter(r) {
			if start <= offset && offset < end {
				return Selection{Start: start, End: end}, true
			}
			start = end + 1
		}
		end++
	}
	return Selection{}, false
}
