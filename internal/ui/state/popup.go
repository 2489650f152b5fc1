package state

import (
	"github.com/atomicstack/jumpbar/internal/jumpbar"
	"github.com/atomicstack/jumpbar/internal/tree"
)

// Entry is one row of a popup: the item and its index among the full
// sibling list, which survives filtering.
type Entry struct {
	Index int
	Item  tree.Item
}

// Selectable reports whether the row can be picked.
func (e Entry) Selectable() bool {
	return tree.Selectable(e.Item)
}

// Title returns the row title.
func (e Entry) Title() string {
	return tree.TitleOf(e.Item)
}

// Popup holds the state of one open sibling menu: the rows on show, the
// cursor, the filter and the viewport.
type Popup struct {
	Depth          int
	Path           tree.Path
	Anchor         jumpbar.Frame
	Full           []Entry
	Items          []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPopup builds popup state for a menu request with the cursor on the
// highlighted sibling.
func NewPopup(req jumpbar.MenuRequest) *Popup {
	full := make([]Entry, len(req.Items))
	for i, item := range req.Items {
		full[i] = Entry{Index: i, Item: item}
	}
	p := &Popup{
		Depth:      req.Depth,
		Path:       req.Path.Clone(),
		Anchor:     req.Anchor,
		Full:       full,
		LastCursor: -1,
	}
	p.applyFilter()
	p.Cursor = p.rowOf(req.Highlight)
	if p.Cursor < 0 {
		p.Cursor = p.firstSelectable()
	}
	return p
}

// ID identifies the popup in trace output.
func (p *Popup) ID() string {
	return p.Path.String()
}

// Chosen returns the full-list index under the cursor when it can be picked.
func (p *Popup) Chosen() (int, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return -1, false
	}
	entry := p.Items[p.Cursor]
	if !entry.Selectable() {
		return -1, false
	}
	return entry.Index, true
}

// rowOf returns the row showing the sibling at index, or -1.
func (p *Popup) rowOf(index int) int {
	for i, entry := range p.Items {
		if entry.Index == index {
			return i
		}
	}
	return -1
}

func (p *Popup) firstSelectable() int {
	for i, entry := range p.Items {
		if entry.Selectable() {
			return i
		}
	}
	return -1
}

func (p *Popup) lastSelectable() int {
	for i := len(p.Items) - 1; i >= 0; i-- {
		if p.Items[i].Selectable() {
			return i
		}
	}
	return -1
}
