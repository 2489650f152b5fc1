package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/jumpbar/internal/tree"
)

func writeTree(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func nextEvent(t *testing.T, w *Watcher, match func(Event) bool) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatal("events channel closed early")
			}
			if match(evt) {
				return evt
			}
		case <-deadline:
			t.Fatal("timed out waiting for watcher event")
		}
	}
}

func TestWatcherPublishesInitialAndReloadedTrees(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	writeTree(t, path, "- title: one\n")

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	first := nextEvent(t, w, func(Event) bool { return true })
	if first.Err != nil {
		t.Fatalf("unexpected initial error: %v", first.Err)
	}
	if len(first.Roots) != 1 || tree.TitleOf(first.Roots[0]) != "one" {
		t.Fatalf("unexpected initial roots %#v", first.Roots)
	}
	if first.Path != w.Path() {
		t.Fatalf("expected event path %q, got %q", w.Path(), first.Path)
	}

	writeTree(t, path, "- title: one\n- title: two\n")
	reloaded := nextEvent(t, w, func(evt Event) bool {
		return evt.Err == nil && len(evt.Roots) == 2
	})
	if tree.TitleOf(reloaded.Roots[1]) != "two" {
		t.Fatalf("unexpected reloaded roots %#v", reloaded.Roots)
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	writeTree(t, path, "- title: ok\n")

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	nextEvent(t, w, func(Event) bool { return true })
	writeTree(t, path, "- icon: x\n")
	failed := nextEvent(t, w, func(evt Event) bool { return evt.Err != nil })
	if failed.Roots != nil {
		t.Fatalf("expected no roots on failure, got %#v", failed.Roots)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	writeTree(t, path, "- title: ok\n")

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tree.yaml")
	if _, err := NewWatcher(path, 0); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()
	for i := 0; i < 5; i++ {
		d.trigger()
	}
	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatal("expected debounced signal")
	}
	select {
	case <-d.C():
		t.Fatal("expected a single signal for the burst")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerZeroDelayFiresImmediately(t *testing.T) {
	d := newDebouncer(0)
	d.trigger()
	select {
	case <-d.C():
	default:
		t.Fatal("expected immediate signal")
	}
}
