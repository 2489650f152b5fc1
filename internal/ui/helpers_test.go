package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/jumpbar/internal/logging"
	"github.com/atomicstack/jumpbar/internal/tree"
	"github.com/charmbracelet/x/ansi"
)

// projectTree is a small tree with a separator among src's children.
func projectTree() []tree.Item {
	return []tree.Item{
		tree.NewBranch("src", "",
			tree.NewLeaf("main.go", ""),
			tree.NewBranch("internal", "",
				tree.NewLeaf("ui.go", ""),
			),
			tree.Separator{},
			tree.NewLeaf("README", ""),
		),
		tree.NewLeaf("docs", ""),
	}
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "jumpbar.log"))
	t.Cleanup(func() { logging.Configure("") })
	return NewHarness(NewModel(opts))
}

// projectHarness installs projectTree on a 40 column bar with [0 1 0]
// selected.
func projectHarness(t *testing.T) *Harness {
	t.Helper()
	h := newTestHarness(t, Options{Width: 40, Select: tree.Path{0, 1, 0}})
	h.Model().InstallTree(projectTree())
	return h
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func plainLines(h *Harness) []string {
	return strings.Split(plainView(h), "\n")
}

type recordingDelegate struct {
	calls []string
}

func (d *recordingDelegate) WillOpenMenu(path tree.Path, items []tree.Item) {
	d.calls = append(d.calls, fmt.Sprintf("willOpen %s %d", path, len(items)))
}

func (d *recordingDelegate) DidOpenMenu(path tree.Path, items []tree.Item) {
	d.calls = append(d.calls, fmt.Sprintf("didOpen %s %d", path, len(items)))
}

func (d *recordingDelegate) WillSelect(item tree.Item, path tree.Path) {
	d.calls = append(d.calls, fmt.Sprintf("willSelect %s %s", path, tree.TitleOf(item)))
}

func (d *recordingDelegate) DidSelect(item tree.Item, path tree.Path) {
	d.calls = append(d.calls, fmt.Sprintf("didSelect %s %s", path, tree.TitleOf(item)))
}
