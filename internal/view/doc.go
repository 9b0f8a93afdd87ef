// Package view binds a cursor, selection, undo history, styling cache and
// viewport to a shared text store.
//
// Several views may share one store. Edits made through one view are seen by
// every other view on the same store; each view keeps its own cursor,
// selection, history and scroll position. After another view edits the
// store, call Sync to clamp the cursor and refresh the styling.
//
// Basic usage:
//
//	store := textstore.FromString("text")
//	v := view.New(store)
//	v.InsertChar('r')         // "rtext"
//	v.Undo()                  // "text"
//	v.Relayout(80, 24, display.CellFont)
//	var list display.List
//	v.Draw(&list)
//
// Thread Safety:
//
// A View is driven from a single event loop and is not safe for concurrent
// use. The store it is bound to is.
package view
