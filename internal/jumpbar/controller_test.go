package jumpbar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/jumpbar/internal/tree"
)

func TestInstallTreeSelectsFirstRoot(t *testing.T) {
	c, _, del := newTestController(nil)
	roots := scenarioTree()
	c.InstallTree(roots)

	if got := c.SelectedPath(); !got.Equal(tree.Path{0}) {
		t.Fatalf("expected [0], got %v", got)
	}
	if c.SelectedItem() != roots[0] {
		t.Fatalf("expected root A selected, got %#v", c.SelectedItem())
	}
	want := []string{"willSelect [0] A", "didSelect [0] A"}
	if !reflect.DeepEqual(del.calls, want) {
		t.Fatalf("expected %v, got %v", want, del.calls)
	}
	if n := len(c.Segments()); n != 1 {
		t.Fatalf("expected one segment, got %d", n)
	}
}

func TestInstallEmptyTreeClearsEverything(t *testing.T) {
	c, rec, _ := newTestController(nil)
	c.InstallTree(scenarioTree())
	if err := c.Select(tree.Path{0, 1}); err != nil {
		t.Fatalf("select: %v", err)
	}

	c.InstallTree(nil)
	if c.SelectedPath() != nil {
		t.Fatalf("expected no selection, got %v", c.SelectedPath())
	}
	if c.SelectedItem() != nil {
		t.Fatalf("expected no selected item")
	}
	if n := len(c.Segments()); n != 0 {
		t.Fatalf("expected no segments, got %d", n)
	}
	for i, seg := range rec.created {
		if !seg.released {
			t.Fatalf("expected segment %d released", i)
		}
	}
}

func TestInstallTreeSkipsLeadingSeparator(t *testing.T) {
	c, _, _ := newTestController(nil)
	c.InstallTree([]tree.Item{tree.Separator{}, tree.NewLeaf("B", "")})
	if got := c.SelectedPath(); !got.Equal(tree.Path{1}) {
		t.Fatalf("expected [1], got %v", got)
	}
}

func TestSelectScenario(t *testing.T) {
	c, rec, _ := newTestController(nil)
	c.InstallTree(scenarioTree())

	if err := c.Select(tree.Path{0, 1}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := tree.TitleOf(c.SelectedItem()); got != "A.1" {
		t.Fatalf("expected A.1, got %q", got)
	}
	segs := segmentsOf(c)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].last || !segs[1].last {
		t.Fatalf("expected only the tail flagged last")
	}
	if segs[1].index != 1 || tree.TitleOf(segs[1].item) != "A.1" {
		t.Fatalf("unexpected tail binding %#v", segs[1])
	}

	deep := segs[1]
	if err := c.Select(tree.Path{0}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if n := len(c.Segments()); n != 1 {
		t.Fatalf("expected 1 segment, got %d", n)
	}
	if !deep.released {
		t.Fatalf("expected depth-1 segment released")
	}
	if !segmentsOf(c)[0].last {
		t.Fatalf("expected remaining segment to become the tail")
	}
	if len(rec.created) != 2 {
		t.Fatalf("expected depth 0 segment reused, created %d", len(rec.created))
	}
}

func TestSelectRecreatesDroppedDepth(t *testing.T) {
	c, rec, _ := newTestController(nil)
	c.InstallTree(scenarioTree())
	_ = c.Select(tree.Path{0, 1})
	_ = c.Select(tree.Path{0})
	_ = c.Select(tree.Path{0, 0})
	if len(rec.created) != 3 {
		t.Fatalf("expected a fresh depth-1 segment, created %d", len(rec.created))
	}
	if segmentsOf(c)[1] != rec.created[2] {
		t.Fatalf("expected newest segment at depth 1")
	}
}

func TestSelectInvalidPathLeavesStateIntact(t *testing.T) {
	c, _, del := newTestController(nil)
	c.InstallTree([]tree.Item{tree.NewLeaf("a", ""), tree.NewLeaf("b", "")})
	del.calls = nil
	before := segmentsOf(c)[0].frame

	for _, p := range []tree.Path{{5}, {0, 0}, {-1}, {2}} {
		err := c.Select(p)
		if !errors.Is(err, tree.ErrInvalidPath) {
			t.Fatalf("expected ErrInvalidPath for %v, got %v", p, err)
		}
		if got := c.SelectedPath(); !got.Equal(tree.Path{0}) {
			t.Fatalf("expected selection [0] kept, got %v", got)
		}
	}
	if err := c.Select(nil); !errors.Is(err, tree.ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
	if len(del.calls) != 0 {
		t.Fatalf("expected no notifications, got %v", del.calls)
	}
	if segmentsOf(c)[0].frame != before {
		t.Fatalf("expected frames untouched")
	}
}

func TestSelectRejectsSeparator(t *testing.T) {
	c, _, _ := newTestController(nil)
	c.InstallTree(demoTree())
	if err := c.Select(tree.Path{0, 2}); !errors.Is(err, tree.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath for separator, got %v", err)
	}
}

func TestSelectWithoutTree(t *testing.T) {
	c, _, _ := newTestController(nil)
	if err := c.Select(tree.Path{0}); !errors.Is(err, tree.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if c.SelectedPath() != nil {
		t.Fatalf("expected nil selection")
	}
}

func TestSelectedPathIsACopy(t *testing.T) {
	c, _, _ := newTestController(nil)
	c.InstallTree(demoTree())
	p := tree.Path{0, 1, 1}
	if err := c.Select(p); err != nil {
		t.Fatalf("select: %v", err)
	}
	p[0] = 1
	got := c.SelectedPath()
	if !got.Equal(tree.Path{0, 1, 1}) {
		t.Fatalf("expected controller to own its path, got %v", got)
	}
	got[2] = 0
	if !c.SelectedPath().Equal(tree.Path{0, 1, 1}) {
		t.Fatalf("expected SelectedPath to return a copy")
	}
}

func TestItemResolvesArbitraryPaths(t *testing.T) {
	c, _, _ := newTestController(nil)
	c.InstallTree(demoTree())
	item, err := c.Item(tree.Path{0, 1, 0})
	if err != nil || tree.TitleOf(item) != "path 0.1.0" {
		t.Fatalf("unexpected item %#v (%v)", item, err)
	}
	if _, err := c.Item(tree.Path{3}); !errors.Is(err, tree.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestDidSelectMayInstallAnotherTree(t *testing.T) {
	c, _, del := newTestController(nil)
	other := []tree.Item{tree.NewLeaf("x", ""), tree.NewBranch("y", "", tree.NewLeaf("y.0", ""))}
	swapped := false
	del.hook = func(call string) {
		if call == "didSelect [0 3] path 0.3" && !swapped {
			swapped = true
			c.InstallTree(other)
		}
	}
	c.InstallTree(demoTree())
	if err := c.Select(tree.Path{0, 3}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !swapped {
		t.Fatal("expected swap")
	}
	if got := c.SelectedPath(); !got.Equal(tree.Path{0}) {
		t.Fatalf("expected new tree's default selection, got %v", got)
	}
	if got := tree.TitleOf(c.SelectedItem()); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
	if n := len(c.Segments()); n != 1 {
		t.Fatalf("expected one segment after swap, got %d", n)
	}
}

func TestWillSelectReentrySupersedesOuterSelect(t *testing.T) {
	c, _, del := newTestController(nil)
	c.InstallTree(demoTree())
	redirected := false
	del.hook = func(call string) {
		if call == "willSelect [0 3] path 0.3" && !redirected {
			redirected = true
			if err := c.Select(tree.Path{0, 1, 1}); err != nil {
				t.Errorf("nested select: %v", err)
			}
		}
	}
	if err := c.Select(tree.Path{0, 3}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := c.SelectedPath(); !got.Equal(tree.Path{0, 1, 1}) {
		t.Fatalf("expected nested selection to win, got %v", got)
	}
	segs := segmentsOf(c)
	if len(segs) != 3 || tree.TitleOf(segs[2].item) != "path 0.1.1" {
		t.Fatalf("expected segments for the nested selection, got %d", len(segs))
	}
}

func TestFocusAndEnabledPropagate(t *testing.T) {
	c, _, _ := newTestController(nil)
	c.InstallTree(demoTree())
	_ = c.Select(tree.Path{0, 1})

	c.Focus()
	for i, seg := range segmentsOf(c) {
		if !seg.selected {
			t.Fatalf("expected segment %d emphasised", i)
		}
	}
	_ = c.Select(tree.Path{0, 1, 0})
	if !segmentsOf(c)[2].selected {
		t.Fatalf("expected new segment to pick up emphasis")
	}
	c.Blur()
	for i, seg := range segmentsOf(c) {
		if seg.selected {
			t.Fatalf("expected segment %d plain", i)
		}
	}
	if c.Focused() {
		t.Fatal("expected blurred")
	}

	c.SetEnabled(false)
	for i, seg := range segmentsOf(c) {
		if seg.enabled {
			t.Fatalf("expected segment %d disabled", i)
		}
	}
	_ = c.Select(tree.Path{0})
	_ = c.Select(tree.Path{0, 1})
	if segmentsOf(c)[1].enabled {
		t.Fatalf("expected new segment created disabled")
	}
}

func TestHitTest(t *testing.T) {
	c, _, _ := newTestController(map[string]float64{"path 0": 10, "path 0.1": 20})
	c.InstallTree(demoTree())
	_ = c.Select(tree.Path{0, 1})
	if depth, ok := c.HitTest(5); !ok || depth != 0 {
		t.Fatalf("expected depth 0, got %d %v", depth, ok)
	}
	if depth, ok := c.HitTest(10); !ok || depth != 1 {
		t.Fatalf("expected depth 1 at boundary, got %d %v", depth, ok)
	}
	if _, ok := c.HitTest(30); ok {
		t.Fatal("expected miss past the tail")
	}
}
