package ui

import (
	"fmt"

	"github.com/atomicstack/jumpbar/internal/source"
	"github.com/atomicstack/jumpbar/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type treeEventMsg struct {
	event source.Event
}

type treeSourceDoneMsg struct{}

func waitForTreeEvent(src TreeSource) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return treeSourceDoneMsg{}
		}
		evt, ok := <-src.Events()
		if !ok {
			return treeSourceDoneMsg{}
		}
		return treeEventMsg{event: evt}
	}
}

func (m *Model) loadTreeCmd(id string) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    id,
		Label: m.treePath,
		Load:  command.FileLoader(m.treePath),
	})
}

func (m *Model) reloadTree() tea.Cmd {
	if m.treePath == "" {
		m.setInfo("Nothing to reload: no tree file")
		return nil
	}
	m.setInfo(fmt.Sprintf("Reloading %s", m.treePath))
	return m.loadTreeCmd("tree:reload")
}

func (m *Model) handleTreeLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(command.TreeLoaded)
	if loaded.Err != nil {
		m.setError(fmt.Errorf("load %s: %w", loaded.Label, loaded.Err))
		return nil
	}
	m.forceClearInfo()
	m.reinstallTree(loaded.Roots)
	return nil
}

func (m *Model) handleTreeEventMsg(msg tea.Msg) tea.Cmd {
	evt := msg.(treeEventMsg).event
	if evt.Err != nil {
		m.setError(fmt.Errorf("watch %s: %w", evt.Path, evt.Err))
	} else {
		m.reinstallTree(evt.Roots)
	}
	return waitForTreeEvent(m.source)
}

func (m *Model) handleTreeSourceDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	return nil
}
