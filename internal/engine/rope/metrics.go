package rope

import "unicode/utf8"

// Point represents a line/column position.
// Line and Column are both 0-indexed and measured in characters.
type Point struct {
	Line   int
	Column int
}

// TextSummary holds aggregated metrics for a text span.
// This is the "summary" type for our SumTree, implementing monoid operations.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the Unicode scalar value count. All rope positions are
	// expressed in this unit.
	Chars int

	// UTF16Units is the UTF-16 code unit count.
	UTF16Units int

	// Lines is the number of line breaks. LF, CR and CRLF each count as
	// one.
	Lines int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains line breaks.
	FlagHasNewlines

	// FlagHasTabs indicates the text contains tab characters.
	FlagHasTabs
)

// Add combines two summaries (monoid operation).
// This is called when concatenating rope sections.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes:      s.Bytes + other.Bytes,
		Chars:      s.Chars + other.Chars,
		UTF16Units: s.UTF16Units + other.UTF16Units,
		Lines:      s.Lines + other.Lines,
		Flags:      s.Flags & other.Flags & FlagASCII,
	}
	result.Flags |= (s.Flags | other.Flags) & (FlagHasNewlines | FlagHasTabs)
	return result
}

// Zero returns the identity element for the summary monoid.
func (TextSummary) Zero() TextSummary {
	return TextSummary{Flags: FlagASCII}
}

// IsZero returns true if this is the zero/identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// IsASCII reports whether every character in the span is ASCII, in which
// case byte and character offsets coincide.
func (s TextSummary) IsASCII() bool {
	return s.Flags&FlagASCII != 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	if len(s) == 0 {
		return TextSummary{Flags: FlagASCII}
	}

	sum := TextSummary{Bytes: len(s), Flags: FlagASCII}
	for i, r := range s {
		sum.Chars++
		if r <= 0xFFFF {
			sum.UTF16Units++
		} else {
			sum.UTF16Units += 2
		}
		if r >= utf8.RuneSelf {
			sum.Flags &^= FlagASCII
		}
		switch {
		case isBreak(s, i):
			sum.Lines++
			sum.Flags |= FlagHasNewlines
		case r == '\t':
			sum.Flags |= FlagHasTabs
		}
	}
	return sum
}

// isBreak reports whether the byte at i ends a line: an LF, or a CR that
// is not the first half of a CRLF. A CR at the end of s ends a line.
func isBreak(s string, i int) bool {
	switch s[i] {
	case '\n':
		return true
	case '\r':
		return i+1 == len(s) || s[i+1] != '\n'
	}
	return false
}

// CountLines returns the number of line breaks in a string.
func CountLines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isBreak(s, i) {
			n++
		}
	}
	return n
}

// byteIndex converts a character offset within s to a byte offset.
// Offsets past the end map to len(s).
func byteIndex(s string, chars int, ascii bool) int {
	if chars <= 0 {
		return 0
	}
	if ascii {
		if chars > len(s) {
			return len(s)
		}
		return chars
	}
	n := 0
	for i := range s {
		if n == chars {
			return i
		}
		n++
	}
	return len(s)
}

// linesBefore counts the line breaks that end within the first chars
// characters of s. A CRLF split by the boundary has not ended yet.
func linesBefore(s string, chars int, ascii bool) int {
	end := byteIndex(s, chars, ascii)
	n := 0
	for i := 0; i < end; i++ {
		if isBreak(s, i) {
			n++
		}
	}
	return n
}

// charAfterNewline returns the character offset just past the nth line
// break (1-indexed) in s, or -1 if s holds fewer than n breaks.
func charAfterNewline(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count, chars := 0, 0
	for i := range s {
		chars++
		if isBreak(s, i) {
			count++
			if count == n {
				return chars
			}
		}
	}
	return -1
}
