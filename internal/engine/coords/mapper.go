package coords

import "fmt"

// Point is a line and tab-expanded column.
type Point struct {
	Line   int
	Column int
}

// String returns "line:column", both zero based.
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Text is the read side of a document the mapper walks.
// *textstore.Store satisfies it.
type Text interface {
	Len() int
	LineCount() int
	CharToLine(offset int) int
	LineToChar(line int) int
	LineToLastChar(line int) int
	Slice(start, end int) string
}

// Mapper converts offsets to points and back for a given tab width.
type Mapper struct {
	tabs TabExpander
}

// NewMapper returns a mapper expanding tabs to tabWidth columns.
func NewMapper(tabWidth int) Mapper {
	return Mapper{tabs: NewTabExpander(tabWidth)}
}

// Tabs returns the mapper's tab expander.
func (m Mapper) Tabs() TabExpander {
	return m.tabs
}

// IndexToPoint converts an offset to a point. The offset is clamped to
// [0, text.Len()].
func (m Mapper) IndexToPoint(text Text, offset int) Point {
	offset = min(max(offset, 0), text.Len())
	line := text.CharToLine(offset)
	start := text.LineToChar(line)
	return Point{
		Line:   line,
		Column: m.tabs.ExpandedWidth(text.Slice(start, offset)),
	}
}

// PointToIndex converts a point to an offset. The line is clamped to the
// document and the column to the line's content; a column inside a tab
// resolves to the tab's offset.
func (m Mapper) PointToIndex(text Text, p Point) int {
	line := min(max(p.Line, 0), text.LineCount()-1)
	start := text.LineToChar(line)
	content := text.Slice(start, text.LineToLastChar(line))
	return start + m.tabs.ColumnToOffset(content, max(p.Column, 0))
}

// LineWidth returns the tab-expanded width of a line's content.
func (m Mapper) LineWidth(text Text, line int) int {
	start := text.LineToChar(line)
	return m.tabs.ExpandedWidth(text.Slice(start, text.LineToLastChar(line)))
}
