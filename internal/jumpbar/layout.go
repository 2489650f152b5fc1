package jumpbar

import (
	"fmt"

	"github.com/atomicstack/jumpbar/internal/logging"
	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/tree"
)

// Layout binds one segment per depth of the selection, sizes them to their
// content and places them left to right. When the natural widths overflow
// the bar, every segment gives up the same share of the excess. Widths may
// go negative on very narrow bars; renderers clip.
func (c *Controller) Layout() {
	n := len(c.selected)
	if n == 0 {
		return
	}

	widths := make([]float64, n)
	total := 0.0
	level := c.roots
	for depth, idx := range c.selected {
		if idx < 0 || idx >= len(level) {
			logging.Error(fmt.Errorf("layout: selection %s no longer resolves at depth %d", c.selected, depth))
			return
		}
		item := level[idx]
		seg := c.slotAt(depth)
		seg.Bind(item, idx, depth == n-1)
		if c.focused {
			seg.Select()
		} else {
			seg.Deselect()
		}
		widths[depth] = seg.NaturalWidth()
		total += widths[depth]
		children, _ := tree.ChildrenOf(item)
		level = children
	}

	if total <= 0 {
		return
	}

	c.compressed = total > c.width
	shrink := 0.0
	if c.compressed {
		shrink = (total - c.width) / float64(n)
	}

	x := 0.0
	for depth := 0; depth < n; depth++ {
		w := widths[depth] - shrink
		c.slots[depth].SetFrame(Frame{X: x, Width: w})
		x += w
	}
	events.Bar.Layout(n, total, c.width, c.compressed)
}

// Resize records a new available width. A compressed bar always lays out
// again; otherwise layout only reruns when the tail segment no longer fits.
func (c *Controller) Resize(width float64) {
	c.width = width
	relayout := false
	if len(c.selected) > 0 {
		if c.compressed {
			relayout = true
		} else if tail, ok := c.SegmentAt(len(c.selected) - 1); ok && tail.Frame().MaxX() > width {
			relayout = true
		}
	}
	events.Bar.Resize(width, relayout)
	if relayout {
		c.Layout()
	}
}
