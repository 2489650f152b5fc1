// Package demo provides the built-in trees shown when no tree file is given,
// along with a delegate that swaps between them.
package demo

import (
	"github.com/atomicstack/jumpbar/internal/tree"
)

const (
	iconOval      tree.Icon = "●"
	iconPolygon   tree.Icon = "⬟"
	iconRectangle tree.Icon = "■"
	iconTriangle  tree.Icon = "▲"
	iconStar      tree.Icon = "★"
	iconSpiral    tree.Icon = "@"
)

// FirstTree returns a single root with a separator among its children.
func FirstTree() []tree.Item {
	return []tree.Item{
		tree.NewBranch("path 0", iconOval,
			tree.NewLeaf("path 0.0", iconPolygon),
			tree.NewBranch("path 0.1", iconRectangle,
				tree.NewLeaf("path 0.1.0", iconStar),
				tree.NewLeaf("path 0.1.1", iconSpiral),
			),
			tree.Separator{},
			tree.NewLeaf("path 0.3 - switch to another tree", iconTriangle),
		),
	}
}

// SecondTree returns two roots, the second four levels deep.
func SecondTree() []tree.Item {
	return []tree.Item{
		tree.NewLeaf("path 0", iconRectangle),
		tree.NewBranch("path 1", iconStar,
			tree.NewBranch("path 1.0", iconPolygon,
				tree.NewBranch("path 1.0.0", iconSpiral,
					tree.NewLeaf("path 1.0.0.0 - switch to another tree", iconTriangle),
				),
			),
		),
	}
}

// swapPaths lists the selections that flip to the other tree.
var swapPaths = []tree.Path{{0, 3}, {1, 0, 0, 0}}

// IsSwapPath reports whether selecting path switches trees.
func IsSwapPath(path tree.Path) bool {
	for _, p := range swapPaths {
		if p.Equal(path) {
			return true
		}
	}
	return false
}

// Installer receives a replacement tree.
type Installer interface {
	InstallTree(roots []tree.Item)
}

// Swapper installs the demo trees and flips between them when a swap item is
// selected.
type Swapper struct {
	target Installer
	second bool
}

// NewSwapper returns a swapper that starts on the first tree.
func NewSwapper(target Installer) *Swapper {
	return &Swapper{target: target}
}

// Current returns a fresh copy of the tree currently on show.
func (s *Swapper) Current() []tree.Item {
	if s.second {
		return SecondTree()
	}
	return FirstTree()
}

// Install pushes the current tree to the target.
func (s *Swapper) Install() {
	if s.target == nil {
		return
	}
	s.target.InstallTree(s.Current())
}

func (s *Swapper) WillOpenMenu(tree.Path, []tree.Item) {}

func (s *Swapper) DidOpenMenu(tree.Path, []tree.Item) {}

func (s *Swapper) WillSelect(tree.Item, tree.Path) {}

// DidSelect swaps trees when path is one of the swap items.
func (s *Swapper) DidSelect(_ tree.Item, path tree.Path) {
	if !IsSwapPath(path) {
		return
	}
	s.second = !s.second
	s.Install()
}
