// Package cursor provides the editing cursor and selection model.
//
// A Cursor is bound to a document and tracks a character offset together
// with its line, tab-expanded column and a virtual column. Vertical motion
// targets the virtual column, so moving through a short line and back onto
// a long one recovers the original column. Only horizontal motion (left,
// right, home, end) and explicit SetIndex reset the virtual column.
//
// Every motion clamps: there is no cursor state that can fall outside
// [0, Len()]. Each motion records the offset it left in Previous, which
// seeds new selections and tells delete operations what range was crossed.
//
// Selection Model:
//
// A Selection is an unordered pair. Start is the anchor and never moves;
// End follows the live cursor. Range normalizes the pair to [lower, upper).
//
// Basic usage:
//
//	c := cursor.New(store, coords.NewMapper(4))
//	c.SetIndex(10)
//	c.Down(1)
//	sel := cursor.NewSelection(c.Previous(), c.Offset())
//
// Thread Safety:
//
// Selection is an immutable value type. Cursor is not thread-safe and is
// owned by a single view.
package cursor
