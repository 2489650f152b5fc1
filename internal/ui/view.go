package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/jumpbar/internal/format/table"
	"github.com/atomicstack/jumpbar/internal/tree"
	uistate "github.com/atomicstack/jumpbar/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	statusLines   = 3
	rowIndicator  = "▌"
	separatorRune = "─"
	branchMarker  = "›"
)

var rowAlignments = []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.renderBar())
	if m.popup != nil {
		lines = append(lines, m.renderPopup()...)
	}
	lines = append(lines, "")
	lines = append(lines, m.renderStatus()...)
	if m.errMsg != "" {
		lines = append(lines, m.clip(renderStyled(styles.Error, "Error: "+m.errMsg)))
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, m.clip(renderStyled(styles.Info, info)))
	}
	if m.showFooter {
		help := m.keys.barHelp()
		if m.popup != nil {
			help = m.keys.popupHelp()
		}
		lines = append(lines, "", m.clip(renderStyled(styles.Footer, helpLine(help))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBar() string {
	var b strings.Builder
	used := 0
	for depth, seg := range m.bar.Segments() {
		bs, ok := seg.(*barSegment)
		if !ok {
			continue
		}
		b.WriteString(bs.render(depth == m.cursor))
		used += bs.cells()
	}
	if m.width > used {
		barStyle := styles.Bar
		if m.bar.Focused() {
			barStyle = styles.BarFocused
		}
		b.WriteString(renderStyled(barStyle, strings.Repeat(" ", m.width-used)))
	}
	return b.String()
}

// renderPopup draws the filter prompt and the visible rows below the anchor
// segment, shifted left when they would run off the screen.
func (m *Model) renderPopup() []string {
	p := m.popup
	m.syncViewport()
	rows, content := popupRows(p)
	indent, _ := m.popupBox()
	pad := strings.Repeat(" ", indent)
	avail := 0
	if m.width > 0 {
		avail = m.width - indent
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, pad+m.filterPrompt())
	if len(p.Items) == 0 {
		msg := "(no entries)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		lines = append(lines, pad+renderStyled(styles.Info, clipText(msg, avail)))
		return lines
	}
	start, end := p.ViewportOffset, len(rows)
	if maxItems := m.maxVisibleItems(); maxItems > 0 && end-start > maxItems {
		end = start + maxItems
	}
	for i := start; i < end; i++ {
		lines = append(lines, pad+renderRow(p, i, rows[i], content, avail))
	}
	return lines
}

// popupBox returns the column the popup starts at and its width.
func (m *Model) popupBox() (indent, width int) {
	p := m.popup
	if p == nil {
		return 0, 0
	}
	_, content := popupRows(p)
	width = content + lipgloss.Width(rowIndicator) + 1
	if w := lipgloss.Width("» (type to filter)"); w > width {
		width = w
	}
	indent = int(math.Round(p.Anchor.X))
	if indent < 0 {
		indent = 0
	}
	if m.width > 0 && indent+width > m.width {
		indent = m.width - width
		if indent < 0 {
			indent = 0
		}
	}
	return indent, width
}

// popupRows returns the plain text of every row and the widest selectable
// row. Rows are laid out as icon, title and a branch marker column.
func popupRows(p *uistate.Popup) ([]string, int) {
	cells := make([][]string, 0, len(p.Items))
	for _, entry := range p.Items {
		if !entry.Selectable() {
			continue
		}
		marker := ""
		if _, ok := tree.ChildrenOf(entry.Item); ok {
			marker = branchMarker
		}
		cells = append(cells, []string{string(tree.IconOf(entry.Item)), entry.Title(), marker})
	}
	formatted := table.Format(cells, rowAlignments)
	rows := make([]string, len(p.Items))
	content := 1
	next := 0
	for i, entry := range p.Items {
		if !entry.Selectable() {
			continue
		}
		rows[i] = formatted[next]
		next++
		if w := lipgloss.Width(rows[i]); w > content {
			content = w
		}
	}
	return rows, content
}

func renderRow(p *uistate.Popup, row int, text string, content, avail int) string {
	if !p.Items[row].Selectable() {
		line := strings.Repeat(separatorRune, content+lipgloss.Width(rowIndicator)+1)
		return renderStyled(styles.MenuSeparator, clipText(line, avail))
	}
	if pad := content - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	indicatorStyle, lineStyle := styles.ItemIndicator, styles.Item
	if row == p.Cursor {
		indicatorStyle, lineStyle = styles.SelectedIndicator, styles.SelectedItem
	}
	full := clipText(rowIndicator+" "+text, avail)
	head := lipgloss.Width(rowIndicator)
	if lipgloss.Width(full) <= head {
		return renderStyled(indicatorStyle, full)
	}
	runes := []rune(full)
	return renderStyled(indicatorStyle, string(runes[:1])) + renderStyled(lineStyle, string(runes[1:]))
}

func (m *Model) renderStatus() []string {
	title, icon, path := "(none)", "", "[]"
	if m.status.path != nil {
		title = m.status.title
		icon = string(m.status.icon)
		path = m.status.path.String()
	}
	return []string{
		m.clip(renderStyled(styles.Status, "Title: ") + title),
		m.clip(renderStyled(styles.Status, "Icon: ") + renderStyled(styles.Icon, icon)),
		m.clip(renderStyled(styles.Status, "IndexPath: ") + path),
	}
}

// clip truncates a rendered line to the viewport width.
func (m *Model) clip(line string) string {
	if m.width <= 0 || lipgloss.Width(line) <= m.width {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width), "…")
}

func clipText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
