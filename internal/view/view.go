package view

import (
	"github.com/google/uuid"

	"github.com/dshills/ropedit/internal/engine/coords"
	"github.com/dshills/ropedit/internal/engine/cursor"
	"github.com/dshills/ropedit/internal/engine/history"
	"github.com/dshills/ropedit/internal/engine/textstore"
	"github.com/dshills/ropedit/internal/renderer/highlight"
	"github.com/dshills/ropedit/internal/renderer/viewport"
)

// Default configuration values.
const (
	DefaultTabSize        = 4
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// FontMetrics gives the size of one character cell.
type FontMetrics interface {
	Advance() int
	LineHeight() int
}

// CharMetrics is the cell size a view was last laid out with.
type CharMetrics struct {
	Advance    int
	LineHeight int
}

// View is one editing window onto a shared store.
type View struct {
	id    uuid.UUID
	store *textstore.Store

	mapper    coords.Mapper
	cursor    *cursor.Cursor
	selection *cursor.Selection
	undo      *history.UndoStack

	registry *highlight.Registry
	styling  *highlight.Cache
	viewport *viewport.Viewport
	metrics  CharMetrics

	linefeed    LineFeed
	indentation Indentation

	// editLine is the first line changed by the latest edit.
	editLine int

	tabSize        int
	maxUndoEntries int
	pageOverlap    int
	theme          *highlight.Theme
}

// Option configures a View during creation.
type Option func(*View)

// WithTabSize sets the tab width used for columns.
func WithTabSize(size int) Option {
	return func(v *View) {
		if size > 0 {
			v.tabSize = size
		}
	}
}

// WithTheme sets the color theme.
func WithTheme(t *highlight.Theme) Option {
	return func(v *View) {
		if t != nil {
			v.theme = t
		}
	}
}

// WithRegistry sets the highlighter registry used by syntax detection.
func WithRegistry(r *highlight.Registry) Option {
	return func(v *View) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(v *View) {
		if max > 0 {
			v.maxUndoEntries = max
		}
	}
}

// WithPageOverlap keeps n lines of the previous page visible after a page
// motion.
func WithPageOverlap(n int) Option {
	return func(v *View) {
		if n >= 0 {
			v.pageOverlap = n
		}
	}
}

// New creates a view on store with the cursor at the start of the text.
// The linefeed, syntax and indentation are detected from the content.
func New(store *textstore.Store, opts ...Option) *View {
	v := &View{
		id:             uuid.New(),
		store:          store,
		tabSize:        DefaultTabSize,
		maxUndoEntries: DefaultMaxUndoEntries,
		metrics:        CharMetrics{Advance: 1, LineHeight: 1},
		viewport:       viewport.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = highlight.DefaultRegistry()
	}
	if v.theme == nil {
		v.theme = highlight.DefaultTheme()
	}

	v.mapper = coords.NewMapper(v.tabSize)
	v.cursor = cursor.New(store, v.mapper)
	v.undo = history.NewUndoStack(v.maxUndoEntries)
	v.styling = highlight.NewCache(nil, v.theme)

	v.DetectLinefeed()
	v.DetectSyntax()
	v.DetectIndentation()
	return v
}

// ID returns the unique identifier of the view.
func (v *View) ID() uuid.UUID {
	return v.id
}

// Store returns the store the view edits.
func (v *View) Store() *textstore.Store {
	return v.store
}

// Name returns the display name of the underlying file.
func (v *View) Name() string {
	return v.store.Name()
}

// String returns the whole text.
func (v *View) String() string {
	return v.store.String()
}

// IsDirty reports whether the store has unsaved changes.
func (v *View) IsDirty() bool {
	return v.store.IsDirty()
}

// Encoding returns the name of the charset used when saving.
func (v *View) Encoding() string {
	return v.store.Encoding().Name
}

// Syntax returns the language of the active highlighter.
func (v *View) Syntax() string {
	return v.styling.Highlighter().Language()
}

// Linefeed returns the line terminator inserted by InsertLinefeed.
func (v *View) Linefeed() LineFeed {
	return v.linefeed
}

// Indentation returns the detected indentation.
func (v *View) Indentation() Indentation {
	return v.indentation
}

// TabSize returns the tab width.
func (v *View) TabSize() int {
	return v.tabSize
}

// Tabs returns the tab stop calculator of the view.
func (v *View) Tabs() coords.TabExpander {
	return v.mapper.Tabs()
}

// Theme returns the color theme.
func (v *View) Theme() *highlight.Theme {
	return v.theme
}

// SetTheme changes the color theme and restyles the visible lines.
func (v *View) SetTheme(t *highlight.Theme) {
	if t == nil {
		return
	}
	v.theme = t
	v.styling.SetTheme(t)
	v.styling.Expand(v.viewport.LineEnd(), v.store)
}

// Offset returns the cursor offset.
func (v *View) Offset() int {
	return v.cursor.Offset()
}

// LineIdx returns the cursor line.
func (v *View) LineIdx() int {
	return v.cursor.Line()
}

// ColIdx returns the cursor column.
func (v *View) ColIdx() int {
	return v.cursor.Column()
}

// Cursor returns the cursor state.
func (v *View) Cursor() cursor.State {
	return v.cursor.State()
}

// SetIndex moves the cursor to offset, clamped to the text.
func (v *View) SetIndex(offset int) {
	v.cursor.SetIndex(offset)
}

// Metrics returns the cell size of the last layout.
func (v *View) Metrics() CharMetrics {
	return v.metrics
}

// Viewport returns the visible region.
func (v *View) Viewport() *viewport.Viewport {
	return v.viewport
}

// PageLength returns the number of lines moved by a page motion.
func (v *View) PageLength() int {
	return max(v.viewport.Height()-v.pageOverlap, 1)
}

// CanUndo reports whether Undo would change anything.
func (v *View) CanUndo() bool {
	return v.undo.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (v *View) CanRedo() bool {
	return v.undo.CanRedo()
}

// Sync brings the view up to date after the store changed from fromLine
// on. The cursor and selection are clamped and styling is redone from
// fromLine to the end of the viewport.
func (v *View) Sync(fromLine int) {
	v.cursor.Sync()
	if v.selection != nil {
		s := v.selection.Clamp(v.store.Len())
		v.selection = &s
	}
	v.styling.Update(fromLine, v.viewport.LineEnd(), v.store)
}

// Relayout resizes the viewport to a surface of w by h pixels.
func (v *View) Relayout(w, h int, font FontMetrics) {
	v.metrics = CharMetrics{Advance: max(font.Advance(), 1), LineHeight: max(font.LineHeight(), 1)}
	v.viewport.Resize(w, h, v.metrics.Advance, v.metrics.LineHeight)
	v.styling.Expand(v.viewport.LineEnd(), v.store)
}
