// Package jumpbar implements the path/selection state machine behind a
// breadcrumb "jump bar": a row of segments, one per depth of the selected
// path through an item tree, where each segment opens a menu of its siblings.
//
// The Controller owns the selection and a table of segments indexed by depth.
// It never draws anything itself; rendering lives behind the Segment
// interface. All methods must be called from a single goroutine (the UI event
// loop). Delegate callbacks may re-enter the controller.
package jumpbar

import (
	"errors"
	"fmt"

	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/tree"
)

var (
	// ErrNoSelection is returned by operations that need a selected path.
	ErrNoSelection = errors.New("no selection")
	// ErrDisabled is returned when a disabled bar is asked to open a menu.
	ErrDisabled = errors.New("jump bar disabled")
)

// Controller is the jump bar control.
type Controller struct {
	factory  SegmentFactory
	delegate Delegate

	roots    []tree.Item
	selected tree.Path
	slots    []Segment

	width      float64
	compressed bool
	focused    bool
	enabled    bool

	// generation changes on every tree install and committed selection;
	// treeGen only on tree installs.
	generation uint64
	treeGen    uint64
}

// New returns an enabled controller with no tree installed. factory must not
// be nil; delegate may be.
func New(factory SegmentFactory, delegate Delegate) *Controller {
	return &Controller{
		factory:  factory,
		delegate: delegate,
		enabled:  true,
	}
}

// SetDelegate replaces the delegate.
func (c *Controller) SetDelegate(d Delegate) {
	c.delegate = d
}

// InstallTree replaces the item tree, drops every segment and clears the
// selection. When the new tree has a selectable root, the first one is
// selected (normally [0]); no deeper item is chosen automatically.
func (c *Controller) InstallTree(roots []tree.Item) {
	c.dropSlots(0)
	c.selected = nil
	c.roots = tree.CloneItems(roots)
	c.generation++
	c.treeGen++
	events.Tree.Installed(len(c.roots))

	c.Layout()

	// [0] unless the tree leads with separators, which cannot be selected.
	for i, item := range c.roots {
		if !tree.Selectable(item) {
			continue
		}
		if err := c.Select(tree.Path{i}); err != nil {
			events.Bar.SelectRejected(tree.Path{i}.String(), err)
		}
		return
	}
}

// Select makes path the selected path. On error the previous selection and
// segments are left untouched. If a WillSelect callback replaces the tree or
// commits another selection, that nested change wins and Select returns nil
// without committing path.
func (c *Controller) Select(path tree.Path) error {
	if len(path) == 0 {
		events.Bar.SelectRejected(path.String(), tree.ErrEmptyPath)
		return tree.ErrEmptyPath
	}
	item, err := tree.Resolve(c.roots, path)
	if err == nil && !tree.Selectable(item) {
		err = fmt.Errorf("%w: %s is a separator", tree.ErrInvalidPath, path)
	}
	if err != nil {
		events.Bar.SelectRejected(path.String(), err)
		return err
	}

	next := path.Clone()
	gen := c.generation
	if c.delegate != nil {
		c.delegate.WillSelect(item, next.Clone())
	}
	if gen != c.generation {
		events.Bar.SelectSuperseded(next.String())
		return nil
	}

	c.dropSlots(len(next))
	c.selected = next
	c.generation++
	c.Layout()
	events.Bar.Select(next.String(), tree.TitleOf(item))

	if c.delegate != nil {
		c.delegate.DidSelect(item, next.Clone())
	}
	return nil
}

// SelectedPath returns a copy of the selected path, or nil.
func (c *Controller) SelectedPath() tree.Path {
	return c.selected.Clone()
}

// Item resolves path against the installed tree.
func (c *Controller) Item(path tree.Path) (tree.Item, error) {
	return tree.Resolve(c.roots, path)
}

// SelectedItem returns the item at the selected path, or nil.
func (c *Controller) SelectedItem() tree.Item {
	if len(c.selected) == 0 {
		return nil
	}
	item, err := tree.Resolve(c.roots, c.selected)
	if err != nil {
		return nil
	}
	return item
}

// Roots returns a copy of the installed root set.
func (c *Controller) Roots() []tree.Item {
	return tree.CloneItems(c.roots)
}

// Segments returns the live segments ordered by depth.
func (c *Controller) Segments() []Segment {
	dup := make([]Segment, len(c.slots))
	copy(dup, c.slots)
	return dup
}

// SegmentAt returns the segment for depth, if one exists.
func (c *Controller) SegmentAt(depth int) (Segment, bool) {
	if depth < 0 || depth >= len(c.slots) {
		return nil, false
	}
	return c.slots[depth], true
}

// Focus turns on visual emphasis for every segment. The path is unchanged.
func (c *Controller) Focus() {
	c.focused = true
	for _, seg := range c.slots {
		seg.Select()
	}
}

// Blur turns visual emphasis off.
func (c *Controller) Blur() {
	c.focused = false
	for _, seg := range c.slots {
		seg.Deselect()
	}
}

// Focused reports whether emphasis is on.
func (c *Controller) Focused() bool {
	return c.focused
}

// SetEnabled enables or disables the bar and all of its segments.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	for _, seg := range c.slots {
		seg.SetEnabled(enabled)
	}
}

// Enabled reports whether the bar accepts menu interaction.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Compressed reports whether the last layout had to shrink segments.
func (c *Controller) Compressed() bool {
	return c.compressed
}

// Width returns the available bar width.
func (c *Controller) Width() float64 {
	return c.width
}

// HitTest returns the depth of the segment containing x.
func (c *Controller) HitTest(x float64) (int, bool) {
	for depth, seg := range c.slots {
		if seg.Frame().Contains(x) {
			return depth, true
		}
	}
	return -1, false
}

// slotAt returns the segment for depth, creating it (and any missing
// shallower ones) on first use.
func (c *Controller) slotAt(depth int) Segment {
	for len(c.slots) <= depth {
		seg := c.factory(len(c.slots))
		seg.SetEnabled(c.enabled)
		c.slots = append(c.slots, seg)
	}
	return c.slots[depth]
}

// dropSlots discards the segments at depth >= from.
func (c *Controller) dropSlots(from int) {
	if from < 0 {
		from = 0
	}
	if from >= len(c.slots) {
		return
	}
	for _, seg := range c.slots[from:] {
		if r, ok := seg.(Releaser); ok {
			r.Release()
		}
	}
	for i := from; i < len(c.slots); i++ {
		c.slots[i] = nil
	}
	c.slots = c.slots[:from]
}
