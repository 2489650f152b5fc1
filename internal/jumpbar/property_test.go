package jumpbar

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/atomicstack/jumpbar/internal/tree"
	"pgregory.net/rapid"
)

// genTree draws a tree of bounded depth and fan-out with unique titles.
func genTree(t *rapid.T, depth int, prefix string) []tree.Item {
	n := rapid.IntRange(1, 4).Draw(t, "fanout"+prefix)
	items := make([]tree.Item, n)
	for i := range items {
		title := fmt.Sprintf("%s%d", prefix, i)
		if depth > 0 && rapid.Bool().Draw(t, "branch"+title) {
			items[i] = tree.NewBranch(title, "", genTree(t, depth-1, title+".")...)
			continue
		}
		items[i] = tree.NewLeaf(title, "")
	}
	return items
}

// genValidPath walks down from the roots, stopping at a random depth.
func genValidPath(t *rapid.T, roots []tree.Item) tree.Path {
	var p tree.Path
	level := roots
	for {
		idx := rapid.IntRange(0, len(level)-1).Draw(t, fmt.Sprintf("idx%d", len(p)))
		p = append(p, idx)
		children, ok := tree.ChildrenOf(level[idx])
		if !ok || len(children) == 0 || rapid.Bool().Draw(t, fmt.Sprintf("stop%d", len(p))) {
			return p
		}
		level = children
	}
}

func TestPropertySelectRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots := genTree(t, 4, "")
		c, _, _ := newTestController(nil)
		c.InstallTree(roots)
		p := genValidPath(t, roots)
		if err := c.Select(p); err != nil {
			t.Fatalf("select %v: %v", p, err)
		}
		if got := c.SelectedPath(); !got.Equal(p) {
			t.Fatalf("expected %v, got %v", p, got)
		}
		if n := len(c.Segments()); n != len(p) {
			t.Fatalf("expected %d segments, got %d", len(p), n)
		}
	})
}

func TestPropertyInvalidSelectKeepsState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots := genTree(t, 3, "")
		c, _, _ := newTestController(nil)
		c.InstallTree(roots)
		before := genValidPath(t, roots)
		if err := c.Select(before); err != nil {
			t.Fatalf("select: %v", err)
		}
		bad := genValidPath(t, roots)
		depth := rapid.IntRange(0, len(bad)-1).Draw(t, "badDepth")
		siblings, err := tree.ChildrenAt(roots, bad[:depth])
		if err != nil {
			t.Fatalf("children: %v", err)
		}
		bad = bad.Prefix(depth + 1)
		bad[depth] = len(siblings) + rapid.IntRange(0, 5).Draw(t, "overflow")
		if err := c.Select(bad); !errors.Is(err, tree.ErrInvalidPath) {
			t.Fatalf("expected ErrInvalidPath for %v, got %v", bad, err)
		}
		if got := c.SelectedPath(); !got.Equal(before) {
			t.Fatalf("expected %v kept, got %v", before, got)
		}
	})
}

func TestPropertyCompression(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "segments")
		widths := map[string]float64{}
		var build func(d int) tree.Item
		build = func(d int) tree.Item {
			title := fmt.Sprintf("s%d", d)
			widths[title] = rapid.Float64Range(1, 50).Draw(t, "width"+title)
			if d == n-1 {
				return tree.NewLeaf(title, "")
			}
			return tree.NewBranch(title, "", build(d+1))
		}
		roots := []tree.Item{build(0)}
		available := rapid.Float64Range(0, 400).Draw(t, "available")

		c, _, _ := newTestController(widths)
		c.Resize(available)
		c.InstallTree(roots)
		p := make(tree.Path, n)
		if err := c.Select(p); err != nil {
			t.Fatalf("select: %v", err)
		}

		total := 0.0
		for d := 0; d < n; d++ {
			total += widths[fmt.Sprintf("s%d", d)]
		}
		segs := segmentsOf(c)
		shrink := 0.0
		if total > available {
			shrink = (total - available) / float64(n)
		}
		x := 0.0
		for d, seg := range segs {
			want := widths[fmt.Sprintf("s%d", d)] - shrink
			if math.Abs(seg.frame.Width-want) > 1e-6 {
				t.Fatalf("segment %d: expected width %v, got %v", d, want, seg.frame.Width)
			}
			if math.Abs(seg.frame.X-x) > 1e-6 {
				t.Fatalf("segment %d: expected x %v, got %v", d, x, seg.frame.X)
			}
			x += seg.frame.Width
		}
		if total > available && math.Abs(x-available) > 1e-6 {
			t.Fatalf("expected compressed span %v, got %v", available, x)
		}
		if c.Compressed() != (total > available) {
			t.Fatalf("unexpected compressed flag %v", c.Compressed())
		}
	})
}
