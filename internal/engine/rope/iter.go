package rope

import "unicode/utf8"

// chunkIterFrame represents a position in the tree traversal for chunk iteration.
type chunkIterFrame struct {
	node     *Node
	childIdx int // next child index to visit (internal nodes)
	chunkIdx int // next chunk index to visit (leaf nodes)
	offset   int // character offset at start of this node
}

// ChunkIterator iterates over chunks in a rope.
type ChunkIterator struct {
	rope       Rope
	stack      []chunkIterFrame
	started    bool
	chunk      Chunk
	chunkStart int
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	return &ChunkIterator{
		rope:  r,
		stack: make([]chunkIterFrame, 0, 16),
	}
}

// Next advances to the next chunk.
// Returns true if there is a chunk, false if iteration is complete.
func (it *ChunkIterator) Next() bool {
	if !it.started {
		it.started = true
		if it.rope.root == nil {
			return false
		}
		it.stack = append(it.stack, chunkIterFrame{node: it.rope.root})
		return it.findNextChunk()
	}

	if len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		if frame.node.IsLeaf() {
			frame.chunkIdx++
		}
	}
	return it.findNextChunk()
}

func (it *ChunkIterator) findNextChunk() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		node := frame.node

		if node.IsLeaf() {
			if frame.chunkIdx < len(node.chunks) {
				chunkOffset := frame.offset
				for i := 0; i < frame.chunkIdx; i++ {
					chunkOffset += node.chunks[i].Len()
				}
				it.chunk = node.chunks[frame.chunkIdx]
				it.chunkStart = chunkOffset
				return true
			}
			it.pop()
			continue
		}

		if frame.childIdx < len(node.children) {
			childOffset := frame.offset
			for i := 0; i < frame.childIdx; i++ {
				childOffset += node.childSummaries[i].Chars
			}
			it.stack = append(it.stack, chunkIterFrame{
				node:   node.children[frame.childIdx],
				offset: childOffset,
			})
			continue
		}
		it.pop()
	}
	return false
}

func (it *ChunkIterator) pop() {
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.stack) > 0 {
		it.stack[len(it.stack)-1].childIdx++
	}
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// Offset returns the character offset of the start of the current chunk.
func (it *ChunkIterator) Offset() int {
	return it.chunkStart
}

// RuneIterator walks the characters of a rope forward from a starting offset.
type RuneIterator struct {
	chunks *ChunkIterator
	data   string
	pos    int // byte position within data
	offset int // character offset of the next rune
	r      rune
	done   bool
}

// RunesFrom returns an iterator positioned before the character at offset.
func (r Rope) RunesFrom(offset int) *RuneIterator {
	offset = min(max(offset, 0), r.Len())
	it := &RuneIterator{chunks: r.Chunks(), offset: offset}
	for it.chunks.Next() {
		c := it.chunks.Chunk()
		if it.chunks.Offset()+c.Len() > offset {
			it.data = c.String()
			it.pos = c.byteIndex(offset - it.chunks.Offset())
			return it
		}
	}
	it.done = true
	return it
}

// Runes returns an iterator over every character of the rope.
func (r Rope) Runes() *RuneIterator {
	return r.RunesFrom(0)
}

// Next advances to the next character.
func (it *RuneIterator) Next() bool {
	if it.done {
		return false
	}
	for it.pos >= len(it.data) {
		if !it.chunks.Next() {
			it.done = true
			return false
		}
		it.data = it.chunks.Chunk().String()
		it.pos = 0
	}
	ch, size := utf8.DecodeRuneInString(it.data[it.pos:])
	it.r = ch
	it.pos += size
	it.offset++
	return true
}

// Rune returns the current character.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// Offset returns the character offset of the current character.
func (it *RuneIterator) Offset() int {
	return it.offset - 1
}

// LineIterator iterates over the lines of a rope, terminators included.
type LineIterator struct {
	rope  Rope
	line  int
	count int
	text  string
}

// Lines returns an iterator over all lines in the rope.
func (r Rope) Lines() *LineIterator {
	return &LineIterator{rope: r, line: -1, count: r.LineCount()}
}

// Next advances to the next line.
func (it *LineIterator) Next() bool {
	if it.line+1 >= it.count {
		return false
	}
	it.line++
	it.text = it.rope.Line(it.line)
	return true
}

// Text returns the current line, including its trailing newline if any.
func (it *LineIterator) Text() string {
	return it.text
}

// Line returns the current line index.
func (it *LineIterator) Line() int {
	return it.line
}
