// Package history provides snapshot-based undo and redo.
//
// History is a flat array of entries with a current index, not a tree.
// Each entry is either Applied, the state captured before an edit, or
// LiveTip, the state captured at the first undo from the live tip so that
// a following redo can return to it.
//
// The protocol for an editor is:
//
//	stack.Push(current)          // before every mutation
//	stack.CaptureTip(current)    // before Undo
//	if s, ok := stack.Undo(); ok { restore(s) }
//	if s, ok := stack.Redo(); ok { restore(s) }
//
// Undo and redo at the ends of the history report false and change nothing.
//
// Snapshots pair an immutable rope with a cursor state. The rope shares
// structure with the live document, so a snapshot costs O(1) to take and
// is unaffected by later edits.
//
// Stack is safe for concurrent use.
package history
