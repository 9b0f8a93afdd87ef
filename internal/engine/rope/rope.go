package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified.
// This enables cheap snapshots and thread-safe concurrent read access.
//
// Every offset accepted or returned by a Rope is a character (Unicode
// scalar value) offset, never a byte offset.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var builder Builder
	if _, err := builder.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return builder.Build(), nil
}

func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leafChunks))
	}

	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}
	return Rope{root: nodes[0]}
}

// Len returns the total number of characters.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LenBytes returns the UTF-8 encoded length.
func (r Rope) LenBytes() int {
	return r.Summary().Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.LineCount()
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.LenBytes())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the character range [start, end).
func (r Rope) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// CharAt returns the character at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) CharAt(offset int) (rune, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}

	node := r.root
	for !node.IsLeaf() {
		idx, childOffset, _ := node.findChildByOffset(offset)
		node = node.children[idx]
		offset = childOffset
	}
	for _, chunk := range node.chunks {
		if offset < chunk.Len() {
			for _, ch := range chunk.Slice(offset, offset+1) {
				return ch, true
			}
		}
		offset -= chunk.Len()
	}
	return 0, false
}

// Insert inserts text at the given character offset.
// Returns a new rope; original is unchanged.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes text in the character range [start, end).
// Returns a new rope; original is unchanged.
func (r Rope) Delete(start, end int) Rope {
	start = max(start, 0)
	if r.root == nil || start >= end {
		return r
	}

	n := r.Len()
	if start >= n {
		return r
	}
	end = min(end, n)

	if start == 0 && end == n {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end == n {
		left, _ := r.Split(start)
		return left
	}

	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Replace replaces text in the character range [start, end) with new text.
// Returns a new rope; original is unchanged.
func (r Rope) Replace(start, end int, text string) Rope {
	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Delete(start, end)
	}
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at offset, returning two ropes.
// Left rope contains [0, offset), right contains [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	leftRoot, rightRoot := r.root.split(offset)
	return Rope{root: leftRoot}, Rope{root: rightRoot}
}

// Concat concatenates two ropes.
// Returns a new rope; originals are unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	if last, _ := r.CharAt(r.Len() - 1); last == '\r' {
		if first, _ := other.CharAt(0); first == '\n' {
			// Keep the CRLF in one chunk.
			left, _ := r.Split(r.Len() - 1)
			_, right := other.Split(1)
			crlf := newLeafNodeWithChunks([]Chunk{NewChunk("\r\n")})
			return Rope{root: concat(concat(left.root, crlf), right.root)}
		}
	}
	return Rope{root: concat(r.root, other.root)}
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// CharToLine returns the line containing the given character offset.
// Offsets past the end map to the last line.
func (r Rope) CharToLine(offset int) int {
	if r.root == nil || offset <= 0 {
		return 0
	}
	if offset >= r.Len() {
		return r.LineCount() - 1
	}

	line := 0
	node := r.root
	for !node.IsLeaf() {
		idx, childOffset, before := node.findChildByOffset(offset)
		line += before.Lines
		node = node.children[idx]
		offset = childOffset
	}
	for _, chunk := range node.chunks {
		if offset < chunk.Len() {
			return line + linesBefore(chunk.data, offset, chunk.summary.IsASCII())
		}
		offset -= chunk.Len()
		line += chunk.summary.Lines
	}
	return line
}

// LineToChar returns the character offset of the first character of line.
// Lines past the end map to Len().
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}

	chars := 0
	node := r.root
	for !node.IsLeaf() {
		idx, childLine, before := node.findChildByLine(line)
		chars += before.Chars
		node = node.children[idx]
		line = childLine
	}
	for _, chunk := range node.chunks {
		if chunk.summary.Lines >= line {
			return chars + charAfterNewline(chunk.data, line)
		}
		line -= chunk.summary.Lines
		chars += chunk.Len()
	}
	return chars
}

// Line returns the text of the given line, including its terminator.
func (r Rope) Line(line int) string {
	if line < 0 || line >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineToChar(line), r.LineToChar(line+1))
}

// LineText returns the text of the given line without its line break.
func (r Rope) LineText(line int) string {
	text := r.Line(line)
	if t, ok := strings.CutSuffix(text, "\r\n"); ok {
		return t
	}
	if t, ok := strings.CutSuffix(text, "\n"); ok {
		return t
	}
	return strings.TrimSuffix(text, "\r")
}

// OffsetToPoint converts a character offset to a raw line/column position,
// counting one column per character.
func (r Rope) OffsetToPoint(offset int) Point {
	offset = min(max(offset, 0), r.Len())
	line := r.CharToLine(offset)
	return Point{Line: line, Column: offset - r.LineToChar(line)}
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// ChunkCount returns the total number of chunks in the rope.
func (r Rope) ChunkCount() int {
	if r.root == nil {
		return 0
	}
	return countChunks(r.root)
}

func countChunks(n *Node) int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	count := 0
	for _, child := range n.children {
		count += countChunks(child)
	}
	return count
}

// Same reports whether r and other are the same rope value, such as a
// snapshot and the rope it was taken from. Ropes with equal text built
// separately are not the same unless both are empty.
func (r Rope) Same(other Rope) bool {
	if r.Len() == 0 && other.Len() == 0 {
		return true
	}
	return r.root == other.root
}

// Equals returns true if two ropes contain the same text.
// Note: This compares content, not structure.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() || r.LenBytes() != other.LenBytes() {
		return false
	}
	return r.String() == other.String()
}
