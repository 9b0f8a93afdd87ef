// Package rope provides an immutable rope data structure for efficient text storage and manipulation.
//
// A rope is a tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (byte, character and newline counts). This
// implementation uses a B+ tree variant for better cache locality and
// worst-case performance.
//
// All positions are character offsets: a multi-byte character such as 'ö'
// occupies one position. Line breaks are LF characters; a CRLF line keeps its
// CR as the last character of the line.
//
// Key features:
//   - O(log n) insertion, deletion, and offset/line conversion
//   - Immutable operations return new ropes; originals are never modified
//   - Copy-on-write semantics enable cheap snapshots for undo
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	r := rope.FromString("Nöel\nhello")
//	r = r.Insert(4, "!")      // "Nöel!\nhello"
//	line := r.CharToLine(7)   // 1
//	start := r.LineToChar(1)  // 6
package rope
