package ui

import (
	"github.com/atomicstack/jumpbar/internal/jumpbar"
	"github.com/atomicstack/jumpbar/internal/logging/events"
	uistate "github.com/atomicstack/jumpbar/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	barRow         = 0
	popupFirstItem = 2 // bar + filter prompt
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	events.UI.Key(keyMsg.String(), m.popup != nil)
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.popup != nil {
		return m.handlePopupKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveSegmentCursor(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.moveSegmentCursor(1)
	case key.Matches(keyMsg, m.keys.Open):
		m.openPopup(m.cursor)
	case key.Matches(keyMsg, m.keys.Focus):
		m.toggleFocus()
	case key.Matches(keyMsg, m.keys.Reload):
		return m.reloadTree()
	}
	return nil
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	p := m.popup
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.closePopup(jumpbar.Dismiss)
		return nil
	case key.Matches(msg, m.keys.Pick):
		m.pickFromPopup()
		return nil
	case key.Matches(msg, m.keys.Up):
		m.movePopupCursor(p.MoveCursorUp)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.movePopupCursor(p.MoveCursorDown)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.movePopupCursor(func() bool { return p.MoveCursorPageUp(m.maxVisibleItems()) })
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.movePopupCursor(func() bool { return p.MoveCursorPageDown(m.maxVisibleItems()) })
		return nil
	case key.Matches(msg, m.keys.Home):
		m.movePopupCursor(p.MoveCursorHome)
		return nil
	case key.Matches(msg, m.keys.End):
		m.movePopupCursor(p.MoveCursorEnd)
		return nil
	}
	_, cmd := m.handleTextInput(msg)
	return cmd
}

func (m *Model) movePopupCursor(move func() bool) {
	if m.popup == nil || !move() {
		return
	}
	events.UI.MenuCursor(m.popup.ID(), m.popup.Cursor)
	m.syncViewport()
}

func (m *Model) moveSegmentCursor(delta int) {
	n := len(m.bar.SelectedPath())
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	if next == m.cursor {
		return
	}
	m.cursor = next
	events.UI.SegmentFocus(next)
}

func (m *Model) toggleFocus() {
	if m.bar.Focused() {
		m.bar.Blur()
		return
	}
	m.bar.Focus()
}

// openPopup opens the sibling menu for the segment at depth, replacing any
// popup already on show.
func (m *Model) openPopup(depth int) {
	if m.popup != nil {
		m.closePopup(jumpbar.Dismiss)
	}
	menu, err := m.bar.OpenMenu(depth)
	if err != nil {
		m.setError(err)
		return
	}
	m.menu = menu
	m.popup = uistate.NewPopup(menu.Request())
	m.cursor = depth
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport()
	events.UI.MenuCursor(m.popup.ID(), m.popup.Cursor)
}

func (m *Model) pickFromPopup() {
	if m.popup == nil {
		return
	}
	idx, ok := m.popup.Chosen()
	if !ok {
		return
	}
	m.closePopup(jumpbar.Pick(idx))
}

// closePopup clears popup state before closing the menu, since closing may
// select and re-enter the model.
func (m *Model) closePopup(choice jumpbar.Choice) {
	menu := m.menu
	m.menu = nil
	m.popup = nil
	if menu == nil {
		return
	}
	if err := menu.Close(choice); err != nil {
		m.setError(err)
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev := msg.(tea.MouseMsg)
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if ev.Y == barRow {
		depth, ok := m.segmentAtCell(ev.X)
		if !ok {
			if m.popup != nil {
				m.closePopup(jumpbar.Dismiss)
			}
			return nil
		}
		m.openPopup(depth)
		return nil
	}
	if m.popup == nil {
		return nil
	}
	if row, ok := m.popupRowAt(ev.X, ev.Y); ok {
		if m.popup.Items[row].Selectable() {
			m.popup.Cursor = row
			m.pickFromPopup()
		}
		return nil
	}
	m.closePopup(jumpbar.Dismiss)
	return nil
}

// segmentAtCell returns the depth of the segment drawn at column x.
func (m *Model) segmentAtCell(x int) (int, bool) {
	for depth, seg := range m.bar.Segments() {
		if bs, ok := seg.(*barSegment); ok && bs.coversCell(x) {
			return depth, true
		}
	}
	return -1, false
}

// popupRowAt maps a screen cell to a popup item row. Cells beside the popup
// box do not hit a row.
func (m *Model) popupRowAt(x, y int) (int, bool) {
	if m.popup == nil || y < popupFirstItem {
		return 0, false
	}
	indent, width := m.popupBox()
	if x < indent || x >= indent+width {
		return 0, false
	}
	offset := y - popupFirstItem
	visible := len(m.popup.Items) - m.popup.ViewportOffset
	if maxItems := m.maxVisibleItems(); maxItems > 0 && visible > maxItems {
		visible = maxItems
	}
	if offset >= visible {
		return 0, false
	}
	return m.popup.ViewportOffset + offset, true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
		m.bar.Resize(float64(size.Width))
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) syncViewport() {
	if m.popup == nil {
		return
	}
	m.popup.EnsureCursorVisible(m.maxVisibleItems())
}

// maxVisibleItems returns how many popup rows fit, or -1 when the height is
// unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := popupFirstItem + 1 + statusLines // blank line before the status
	if m.errMsg != "" || m.currentInfo() != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}
