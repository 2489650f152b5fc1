// Package command runs tree loads off the Bubble Tea event loop.
package command

import (
	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

// Loader produces a tree.
type Loader func() ([]tree.Item, error)

// Request encapsulates a tree load.
type Request struct {
	ID    string
	Label string
	Load  Loader
}

// TreeLoaded is delivered once a request finishes.
type TreeLoaded struct {
	ID    string
	Label string
	Roots []tree.Item
	Err   error
}

// Bus coordinates the execution of tree loads.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// FileLoader loads the tree file at path.
func FileLoader(path string) Loader {
	return func() ([]tree.Item, error) {
		return tree.LoadFile(path)
	}
}

// Execute wraps a load into a Bubble Tea command while emitting trace logs.
// Requests without a loader produce no message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Load == nil {
			events.Command.Result(req.ID, req.Label, 0, nil)
			return nil
		}
		roots, err := req.Load()
		events.Command.Result(req.ID, req.Label, len(roots), err)
		return TreeLoaded{ID: req.ID, Label: req.Label, Roots: roots, Err: err}
	}
}
