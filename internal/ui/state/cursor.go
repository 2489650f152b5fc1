package state

// MoveCursorUp moves to the previous selectable row, wrapping to the end.
func (p *Popup) MoveCursorUp() bool {
	return p.step(-1)
}

// MoveCursorDown moves to the next selectable row, wrapping to the start.
func (p *Popup) MoveCursorDown() bool {
	return p.step(1)
}

func (p *Popup) step(dir int) bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	pos := p.Cursor
	if pos < 0 || pos >= n {
		pos = 0
		if dir < 0 {
			pos = n - 1
		}
		if p.Items[pos].Selectable() {
			p.Cursor = pos
			return p.Cursor != old
		}
	}
	for i := 0; i < n; i++ {
		pos = (pos + dir + n) % n
		if p.Items[pos].Selectable() {
			p.Cursor = pos
			return p.Cursor != old
		}
	}
	return false
}

// MoveCursorHome moves the cursor to the first selectable row.
func (p *Popup) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if idx := p.firstSelectable(); idx >= 0 {
		p.Cursor = idx
	}
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last selectable row.
func (p *Popup) MoveCursorEnd() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if idx := p.lastSelectable(); idx >= 0 {
		p.Cursor = idx
	}
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Popup) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Popup) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

func (p *Popup) moveCursorBy(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	p.snapToSelectable(delta)
	return p.Cursor != old
}

// snapToSelectable moves off a separator, preferring the direction of travel.
func (p *Popup) snapToSelectable(dir int) {
	if p.Items[p.Cursor].Selectable() {
		return
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	for _, d := range []int{dir, -dir} {
		for i := p.Cursor + d; i >= 0 && i < len(p.Items); i += d {
			if p.Items[i].Selectable() {
				p.Cursor = i
				return
			}
		}
	}
}

func (p *Popup) pageSize(maxVisible int) int {
	total := len(p.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Popup) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	upper := p.ViewportOffset + maxVisible - 1
	if p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
		if p.ViewportOffset < 0 {
			p.ViewportOffset = 0
		}
		if p.ViewportOffset > maxOffset {
			p.ViewportOffset = maxOffset
		}
	}
}
