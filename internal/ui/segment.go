package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/jumpbar/internal/jumpbar"
	"github.com/atomicstack/jumpbar/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const segmentDivider = "›"

// barSegment draws one depth of the selected path as a run of terminal cells.
type barSegment struct {
	depth      int
	title      string
	icon       tree.Icon
	index      int
	last       bool
	frame      jumpbar.Frame
	emphasized bool
	enabled    bool

	// text and divider are cached by Bind and dropped by Release.
	text    string
	divider string
	natural int
}

func newBarSegment(depth int) *barSegment {
	return &barSegment{depth: depth, enabled: true}
}

func (s *barSegment) Bind(item tree.Item, index int, last bool) {
	s.title = tree.TitleOf(item)
	s.icon = tree.IconOf(item)
	s.index = index
	s.last = last
	s.text = s.body()
	s.divider = ""
	if !last {
		s.divider = segmentDivider
	}
	s.natural = lipgloss.Width(s.text) + lipgloss.Width(s.divider)
}

func (s *barSegment) NaturalWidth() float64 {
	return float64(s.natural)
}

func (s *barSegment) SetFrame(f jumpbar.Frame) { s.frame = f }

func (s *barSegment) Frame() jumpbar.Frame { return s.frame }

func (s *barSegment) Select() { s.emphasized = true }

func (s *barSegment) Deselect() { s.emphasized = false }

func (s *barSegment) SetEnabled(enabled bool) { s.enabled = enabled }

// Release drops the bound item and cached text once the controller discards
// the segment.
func (s *barSegment) Release() {
	s.title, s.icon = "", ""
	s.text, s.divider, s.natural = "", "", 0
	s.frame = jumpbar.Frame{}
}

func (s *barSegment) body() string {
	if s.icon == "" {
		return " " + s.title + " "
	}
	return " " + string(s.icon) + " " + s.title + " "
}

// cells returns the number of terminal columns the frame covers. Edges are
// rounded independently so adjacent segments tile without gaps.
func (s *barSegment) cells() int {
	start := int(math.Round(s.frame.X))
	end := int(math.Round(s.frame.MaxX()))
	if end < start {
		return 0
	}
	return end - start
}

// coversCell reports whether column x is drawn by this segment, using the
// same edge rounding as cells.
func (s *barSegment) coversCell(x int) bool {
	start := int(math.Round(s.frame.X))
	end := int(math.Round(s.frame.MaxX()))
	return x >= start && x < end
}

func (s *barSegment) style(cursor bool) *lipgloss.Style {
	switch {
	case !s.enabled:
		return styles.SegmentDisabled
	case cursor:
		return styles.SegmentCursor
	case s.last && s.emphasized:
		return styles.SegmentTail
	default:
		return styles.Segment
	}
}

// render draws the segment clipped to its frame.
func (s *barSegment) render(cursor bool) string {
	width := s.cells()
	if width <= 0 {
		return ""
	}
	body, divider := s.text, s.divider
	style := s.style(cursor)
	natural := lipgloss.Width(body) + lipgloss.Width(divider)
	if natural <= width {
		out := renderStyled(style, body) + renderStyled(styles.SegmentSeparator, divider)
		if pad := width - natural; pad > 0 {
			out += strings.Repeat(" ", pad)
		}
		return out
	}
	clipped := truncate.StringWithTail(body+divider, uint(width), "…")
	if pad := width - lipgloss.Width(clipped); pad > 0 {
		clipped += strings.Repeat(" ", pad)
	}
	return renderStyled(style, clipped)
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
