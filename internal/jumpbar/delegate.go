package jumpbar

import "github.com/atomicstack/jumpbar/internal/tree"

// Delegate observes menu and selection activity. Calls are notifications
// only; nothing they return is consumed. Implementations may call back into
// the controller (for example to install another tree).
type Delegate interface {
	WillOpenMenu(path tree.Path, items []tree.Item)
	DidOpenMenu(path tree.Path, items []tree.Item)
	WillSelect(item tree.Item, path tree.Path)
	DidSelect(item tree.Item, path tree.Path)
}

// DelegateFuncs adapts optional functions to the Delegate interface.
type DelegateFuncs struct {
	OnWillOpenMenu func(tree.Path, []tree.Item)
	OnDidOpenMenu  func(tree.Path, []tree.Item)
	OnWillSelect   func(tree.Item, tree.Path)
	OnDidSelect    func(tree.Item, tree.Path)
}

func (d DelegateFuncs) WillOpenMenu(path tree.Path, items []tree.Item) {
	if d.OnWillOpenMenu != nil {
		d.OnWillOpenMenu(path, items)
	}
}

func (d DelegateFuncs) DidOpenMenu(path tree.Path, items []tree.Item) {
	if d.OnDidOpenMenu != nil {
		d.OnDidOpenMenu(path, items)
	}
}

func (d DelegateFuncs) WillSelect(item tree.Item, path tree.Path) {
	if d.OnWillSelect != nil {
		d.OnWillSelect(item, path)
	}
}

func (d DelegateFuncs) DidSelect(item tree.Item, path tree.Path) {
	if d.OnDidSelect != nil {
		d.OnDidSelect(item, path)
	}
}

// Delegates fans notifications out to each non-nil delegate in order. Every
// delegate receives its own copy of paths and item slices.
type Delegates []Delegate

func (ds Delegates) WillOpenMenu(path tree.Path, items []tree.Item) {
	for _, d := range ds {
		if d != nil {
			d.WillOpenMenu(path.Clone(), tree.CloneItems(items))
		}
	}
}

func (ds Delegates) DidOpenMenu(path tree.Path, items []tree.Item) {
	for _, d := range ds {
		if d != nil {
			d.DidOpenMenu(path.Clone(), tree.CloneItems(items))
		}
	}
}

func (ds Delegates) WillSelect(item tree.Item, path tree.Path) {
	for _, d := range ds {
		if d != nil {
			d.WillSelect(item, path.Clone())
		}
	}
}

func (ds Delegates) DidSelect(item tree.Item, path tree.Path) {
	for _, d := range ds {
		if d != nil {
			d.DidSelect(item, path.Clone())
		}
	}
}
