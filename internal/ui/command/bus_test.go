package command

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/jumpbar/internal/tree"
)

func TestExecuteDeliversLoadedTree(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "tree", Label: "demo", Load: func() ([]tree.Item, error) {
		return []tree.Item{tree.NewLeaf("a", "")}, nil
	}})
	msg, ok := cmd().(TreeLoaded)
	if !ok {
		t.Fatalf("expected TreeLoaded, got %T", cmd())
	}
	if msg.ID != "tree" || msg.Label != "demo" || len(msg.Roots) != 1 || msg.Err != nil {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestExecutePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	msg := New().Execute(Request{ID: "tree", Load: func() ([]tree.Item, error) {
		return nil, boom
	}})().(TreeLoaded)
	if !errors.Is(msg.Err, boom) {
		t.Fatalf("expected boom, got %v", msg.Err)
	}
}

func TestExecuteWithoutLoader(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte("- title: root\n  children:\n    - title: leaf\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	roots, err := FileLoader(path)()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	children, ok := tree.ChildrenOf(roots[0])
	if !ok || len(children) != 1 || tree.TitleOf(children[0]) != "leaf" {
		t.Fatalf("unexpected tree %#v", roots)
	}
}
