package coords

// DefaultTabWidth is the tab width used when none is configured.
const DefaultTabWidth = 4

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the tab width.
func (t TabExpander) TabWidth() int {
	if t.tabWidth < 1 {
		return DefaultTabWidth
	}
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after col.
func (t TabExpander) NextTabStop(col int) int {
	w := t.TabWidth()
	return ((col + w) / w) * w
}

// TabStopOffset returns how many columns a tab at col expands to.
func (t TabExpander) TabStopOffset(col int) int {
	return t.NextTabStop(col) - col
}

// Advance returns the column after drawing r at col.
// Line terminators, NUL and byte order marks take no room.
func (t TabExpander) Advance(col int, r rune) int {
	switch r {
	case '\t':
		return t.NextTabStop(col)
	case '\n', '\r', 0, '\uFEFF', '\uFFFE':
		return col
	}
	return col + 1
}

// ExpandedWidth calculates the visual width of s with tab expansion.
func (t TabExpander) ExpandedWidth(s string) int {
	col := 0
	for _, r := range s {
		col = t.Advance(col, r)
	}
	return col
}

// ColumnToOffset converts a visual column to a character offset in s.
// A column inside a tab's expansion maps to the tab itself, and columns
// past the end of s map to its length.
func (t TabExpander) ColumnToOffset(s string, visualCol int) int {
	col := 0
	offset := 0
	for _, r := range s {
		if col >= visualCol {
			return offset
		}
		next := t.Advance(col, r)
		if next > visualCol {
			return offset
		}
		col = next
		offset++
	}
	return offset
}

// OffsetToColumn converts a character offset in s to a visual column.
func (t TabExpander) OffsetToColumn(s string, charOffset int) int {
	col := 0
	offset := 0
	for _, r := range s {
		if offset >= charOffset {
			return col
		}
		col = t.Advance(col, r)
		offset++
	}
	return col
}
