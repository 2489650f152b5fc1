package ui

import (
	"unicode"

	"github.com/atomicstack/jumpbar/internal/logging/events"
	uistate "github.com/atomicstack/jumpbar/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(p *uistate.Popup, before int) {
	if p == nil {
		return
	}
	if before != p.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the popup filter.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.popup
	if current == nil {
		return false, nil
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		m.errMsg = ""
		events.Filter.Cleared(current.ID())
		m.syncViewport()
		return true, nil
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(current, before)
		m.errMsg = ""
		events.Filter.WordBackspace(current.ID(), current.Filter)
		m.syncViewport()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	current := m.popup
	if text == "" || current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.errMsg = ""
	events.Filter.Append(current.ID(), current.Filter)
	m.syncViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.popup
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.errMsg = ""
	events.Filter.Backspace(current.ID(), current.Filter)
	m.syncViewport()
	return true
}

// filterPrompt renders the popup's filter line with its cursor.
func (m *Model) filterPrompt() string {
	current := m.popup
	if current == nil {
		return ""
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := renderStyled(styles.FilterPrompt, "» ")
	text := current.Filter
	if text == "" {
		placeholder := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + renderStyled(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := renderStyled(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = renderStyled(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
