// Package app wires configuration, tree sources and the UI into a running
// Bubble Tea program.
package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/jumpbar/internal/demo"
	"github.com/atomicstack/jumpbar/internal/logging/events"
	"github.com/atomicstack/jumpbar/internal/source"
	"github.com/atomicstack/jumpbar/internal/tree"
	"github.com/atomicstack/jumpbar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	TreePath   string
	Width      int
	Watch      bool
	Select     tree.Path
	ShowFooter bool
	// InitialWidth and InitialHeight size the first frame until the terminal
	// reports its own size. Unlike Width they do not pin the viewport.
	InitialWidth  int
	InitialHeight int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}

// NewModel builds the UI model for cfg. Without a tree file the demo trees
// are installed along with their swap behaviour. cleanup stops any watcher.
func NewModel(cfg Config) (*ui.Model, func(), error) {
	opts := ui.Options{
		Width:         cfg.Width,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		ShowFooter:    cfg.ShowFooter,
		TreePath:      cfg.TreePath,
		Select:        cfg.Select,
	}
	cleanup := func() {}
	if cfg.Watch {
		if cfg.TreePath == "" {
			return nil, cleanup, errors.New("watch requires a tree file")
		}
		watcher, err := source.NewWatcher(cfg.TreePath, source.DefaultDebounce)
		if err != nil {
			return nil, cleanup, fmt.Errorf("watch tree: %w", err)
		}
		opts.Source = watcher
		cleanup = func() {
			watcher.Stop()
			watcher.Wait()
		}
	}
	model := ui.NewModel(opts)
	if cfg.TreePath == "" {
		swapper := demo.NewSwapper(model)
		model.SetDelegate(swapper)
		swapper.Install()
	}
	return model, cleanup, nil
}
