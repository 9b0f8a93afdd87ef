package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func waitFor(t *testing.T, events <-chan Event, want Operation) Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Op == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("no %s event received", want)
			return Event{}
		}
	}
}

func TestNew(t *testing.T) {
	w := newWatcher(t)
	if w.debounce != 100*time.Millisecond {
		t.Errorf("default debounce = %v, want 100ms", w.debounce)
	}

	w = newWatcher(t, WithDebounce(50*time.Millisecond))
	if w.debounce != 50*time.Millisecond {
		t.Errorf("debounce = %v, want 50ms", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t)
	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	// Not created yet.
	if err := w.Watch(b); err != nil {
		t.Fatalf("Watch() of a missing file error = %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Fatalf("second Watch() error = %v", err)
	}
	if got := w.WatchedFiles(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("WatchedFiles() = %v, want [%s %s]", got, a, b)
	}
	if w.dirs[dir] != 2 {
		t.Errorf("directory count = %d, want 2", w.dirs[dir])
	}

	if err := w.Unwatch(a); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if err := w.Unwatch(b); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if len(w.WatchedFiles()) != 0 || len(w.dirs) != 0 {
		t.Errorf("watch lists not empty after Unwatch: %v %v", w.files, w.dirs)
	}
}

func TestWatcher_StartStop(t *testing.T) {
	w := newWatcher(t)
	if w.IsRunning() {
		t.Error("IsRunning() = true before Start()")
	}
	w.Start()
	w.Start()
	if !w.IsRunning() {
		t.Error("IsRunning() = false after Start()")
	}
	w.Stop()
	w.Stop()
	if w.IsRunning() {
		t.Error("IsRunning() = true after Stop()")
	}
}

func TestWatcher_Translate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	w := newWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		ev     fsnotify.Event
		wantOp Operation
		wantOK bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, OpWrite, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, OpCreate, true},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, OpRemove, true},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, OpRename, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, 0, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "x"), Op: fsnotify.Write}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.translate(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Op != tt.wantOp {
				t.Errorf("translate() op = %v, want %v", got.Op, tt.wantOp)
			}
		})
	}
}

func TestWatcher_Coalesce(t *testing.T) {
	w := newWatcher(t, WithDebounce(time.Second))
	now := time.Now()

	tests := []struct {
		name string
		ops  []Operation
		want Operation
	}{
		{"create then write", []Operation{OpCreate, OpWrite}, OpCreate},
		{"writes", []Operation{OpWrite, OpWrite}, OpWrite},
		{"write then remove", []Operation{OpWrite, OpRemove}, OpRemove},
		{"remove then create", []Operation{OpRemove, OpCreate}, OpCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Event
			w.handlers = []Handler{func(e Event) { got = append(got, e) }}
			for _, op := range tt.ops {
				w.queueEvent(Event{Path: "/f", Op: op, Time: now})
			}

			w.processPendingEvents(now)
			if len(got) != 0 {
				t.Fatalf("events delivered before the debounce elapsed: %v", got)
			}
			w.processPendingEvents(now.Add(2 * time.Second))
			if len(got) != 1 || got[0].Op != tt.want {
				t.Errorf("delivered %v, want one %s event", got, tt.want)
			}
		})
	}
}

func TestWatcher_DetectsFileModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t, WithDebounce(0))
	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	ev := waitFor(t, events, OpWrite)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}
}

func TestWatcher_DetectsReplacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t, WithDebounce(20*time.Millisecond))
	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	tmp := filepath.Join(dir, "doc.txt.tmp")
	if err := os.WriteFile(tmp, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	waitFor(t, events, OpCreate)
}

func TestWatcher_MultipleHandlersAndPanics(t *testing.T) {
	w := newWatcher(t, WithDebounce(0))

	var count atomic.Int32
	var wg sync.WaitGroup
	wg.Add(2)
	w.OnChange(func(Event) {
		defer wg.Done()
		panic("handler failure")
	})
	w.OnChange(func(Event) {
		defer wg.Done()
		count.Add(1)
	})

	w.emitEvent(Event{Path: "/f", Op: OpWrite, Time: time.Now()})
	wg.Wait()
	if count.Load() != 1 {
		t.Errorf("second handler called %d times, want 1", count.Load())
	}
}
