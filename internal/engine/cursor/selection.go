package cursor

import "fmt"

// Selection is an unordered range of selected text.
// Start is the anchor where the selection began; End follows the cursor.
// Selection is an immutable value type.
type Selection struct {
	Start int
	End   int
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active int) Selection {
	return Selection{Start: anchor, End: active}
}

// Expand returns the selection with End moved to active.
func (s Selection) Expand(active int) Selection {
	return Selection{Start: s.Start, End: active}
}

// Lower returns the lower bound of the selection.
func (s Selection) Lower() int {
	return min(s.Start, s.End)
}

// Upper returns the upper bound of the selection.
func (s Selection) Upper() int {
	return max(s.Start, s.End)
}

// Range returns the normalized half-open range [lower, upper).
func (s Selection) Range() (start, end int) {
	return s.Lower(), s.Upper()
}

// Len returns the number of selected characters.
func (s Selection) Len() int {
	return s.Upper() - s.Lower()
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether offset lies in [lower, upper).
func (s Selection) Contains(offset int) bool {
	return s.Lower() <= offset && offset < s.Upper()
}

// Clamp returns a selection with both ends clamped to [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	return Selection{
		Start: min(max(s.Start, 0), maxOffset),
		End:   min(max(s.End, 0), maxOffset),
	}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Selection(%d)", s.Start)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Start, s.End)
}
