// Package display defines the retained drawing commands a view emits and
// the monospace font metrics it lays text out with.
//
// Coordinates are integer units. A pixel frontend uses pixels; the terminal
// frontend uses a font whose advance and line height are both 1, which
// makes one unit one cell.
//
// Basic usage:
//
//	var list display.List
//	v.Draw(&list)
//	for _, cmd := range list.Commands() {
//		switch c := cmd.(type) {
//		case display.Move:
//			...
//		}
//	}
package display
