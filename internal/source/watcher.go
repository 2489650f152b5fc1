// Package source watches a tree file on disk and publishes each successfully
// or unsuccessfully reloaded tree as an Event.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/tree"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used to coalesce editor save bursts.
const DefaultDebounce = 150 * time.Millisecond

// Event conveys a reloaded tree or the error from loading it.
type Event struct {
	Path  string
	Roots []tree.Item
	Err   error
}

// Watcher reloads a tree file whenever it changes and publishes events.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *debouncer

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The current contents are published as the
// first event. The parent directory is watched so atomic renames are seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		fs:       fsw,
		debounce: newDebouncer(debounce),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()
	defer w.debounce.stop()

	if !w.reload() {
		return
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			events.Tree.WatchEvent(w.path, ev.Op.String())
			w.debounce.trigger()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.send(Event{Path: w.path, Err: err}) {
				return
			}
		case <-w.debounce.C():
			if !w.reload() {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *Watcher) reload() bool {
	roots, err := tree.LoadFile(w.path)
	if err != nil {
		events.Tree.LoadFailed(w.path, err)
	} else {
		events.Tree.Loaded(w.path, len(roots))
	}
	return w.send(Event{Path: w.path, Roots: roots, Err: err})
}

func (w *Watcher) send(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
