// Package highlight turns document lines into styled character runs.
//
// A Highlighter tokenizes one line at a time and hands back the lexer state
// at the end of the line so constructs such as block comments carry over to
// the next line. The Cache keeps that per-line state together with the
// resolved style runs and re-tokenizes incrementally: after an edit only the
// lines from the edited one to the end of the visible area are recomputed,
// and scrolling further extends the cache on demand.
//
// Highlighters come from a Registry. Built-in regular-expression
// highlighters cover a handful of languages with multi-line state; every
// other file type falls back to a chroma lexer, and unknown content to plain
// text.
//
// Basic usage:
//
//	reg := highlight.DefaultRegistry()
//	cache := highlight.NewCache(reg.Detect("main.go", ""), highlight.DefaultTheme())
//	cache.Update(0, 40, store)
//	it := cache.Styles(3)
//	for _, r := range store.LineChars(3) {
//		style := it.Next()
//		...
//	}
//
// Thread Safety:
//
// Registry is safe for concurrent use. Cache is owned by a single view and
// is not synchronized.
package highlight
