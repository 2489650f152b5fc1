package jumpbar

import (
	"fmt"

	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/tree"
)

// MenuRequest describes the sibling menu for one segment.
type MenuRequest struct {
	// Depth of the segment that opened the menu.
	Depth int
	// Path is the selection truncated to Depth+1 indices.
	Path tree.Path
	// Items are the siblings at Depth.
	Items []tree.Item
	// Highlight is the index of the currently selected sibling.
	Highlight int
	// Anchor is the frame of the segment the menu hangs from.
	Anchor Frame
}

// Choice is the outcome of a menu.
type Choice struct {
	Index  int
	Picked bool
}

// Pick chooses the item at index.
func Pick(index int) Choice {
	return Choice{Index: index, Picked: true}
}

// Dismiss closes a menu without choosing.
var Dismiss = Choice{Index: -1}

// Chooser presents a menu and blocks until the user picks or dismisses.
type Chooser interface {
	Choose(MenuRequest) Choice
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(MenuRequest) Choice

func (f ChooserFunc) Choose(req MenuRequest) Choice {
	return f(req)
}

// Menu is an open sibling menu. Close must be called exactly once.
type Menu struct {
	c       *Controller
	req     MenuRequest
	treeGen uint64
	closed  bool
}

// Request returns a copy of the menu description.
func (m *Menu) Request() MenuRequest {
	req := m.req
	req.Path = m.req.Path.Clone()
	req.Items = tree.CloneItems(m.req.Items)
	return req
}

// Stale reports whether the tree was replaced since the menu opened.
func (m *Menu) Stale() bool {
	return m.treeGen != m.c.treeGen
}

// ClickSegment runs the whole menu interaction for the segment at depth:
// open, let chooser pick synchronously, close.
func (c *Controller) ClickSegment(depth int, chooser Chooser) error {
	menu, err := c.OpenMenu(depth)
	if err != nil {
		return err
	}
	choice := Dismiss
	if chooser != nil {
		choice = chooser.Choose(menu.Request())
	}
	return menu.Close(choice)
}

// OpenMenu prepares the sibling menu for the segment at depth and notifies
// WillOpenMenu. Event-loop hosts that show the menu over several frames use
// OpenMenu and Close directly instead of ClickSegment.
func (c *Controller) OpenMenu(depth int) (*Menu, error) {
	if !c.enabled {
		return nil, ErrDisabled
	}
	if len(c.selected) == 0 {
		return nil, ErrNoSelection
	}
	if depth < 0 || depth >= len(c.selected) {
		return nil, fmt.Errorf("%w: depth %d outside selection %s", tree.ErrInvalidPath, depth, c.selected)
	}
	sub := c.selected.Prefix(depth + 1)
	items, err := tree.SiblingsOf(c.roots, sub)
	if err != nil {
		return nil, err
	}
	req := MenuRequest{
		Depth:     depth,
		Path:      sub,
		Items:     tree.CloneItems(items),
		Highlight: sub.Last(),
	}
	if seg, ok := c.SegmentAt(depth); ok {
		req.Anchor = seg.Frame()
	}
	menu := &Menu{c: c, req: req, treeGen: c.treeGen}

	events.Bar.MenuOpen(sub.String(), len(items))
	if c.delegate != nil {
		c.delegate.WillOpenMenu(sub.Clone(), tree.CloneItems(items))
	}
	return menu, nil
}

// Close ends the menu with choice and notifies DidOpenMenu. A pick of a
// selectable item selects it; separators, dismissals and menus whose tree
// has been replaced leave the selection alone. Calling Close again is a
// no-op.
func (m *Menu) Close(choice Choice) error {
	if m.closed {
		return nil
	}
	m.closed = true
	c := m.c

	events.Bar.MenuClose(m.req.Path.String(), choice.Picked, choice.Index)
	if c.delegate != nil {
		c.delegate.DidOpenMenu(m.req.Path.Clone(), tree.CloneItems(m.req.Items))
	}

	if !choice.Picked || m.Stale() {
		return nil
	}
	if choice.Index < 0 || choice.Index >= len(m.req.Items) {
		return fmt.Errorf("%w: menu index %d out of range (%d items)", tree.ErrInvalidPath, choice.Index, len(m.req.Items))
	}
	if !tree.Selectable(m.req.Items[choice.Index]) {
		return nil
	}
	next := m.req.Path.Prefix(m.req.Depth).Append(choice.Index)
	return c.Select(next)
}
