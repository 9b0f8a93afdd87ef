// Package coords converts between character offsets and visual points.
//
// A Point is a line and a tab-expanded column: a tab advances the column to
// the next multiple of the tab width rather than by one. Because tabs make
// the column of an offset non-linear, conversions walk the characters of the
// target line.
//
// Conversions never fail. Lines past the end of the document clamp to the
// last line and columns past the end of a line clamp to its last content
// position.
package coords
