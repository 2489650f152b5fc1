package jumpbar

import "github.com/atomicstack/jumpbar/internal/tree"

// Frame is a segment's horizontal placement inside the bar. Widths are
// fractional so the compression math stays exact; renderers round.
type Frame struct {
	X     float64
	Width float64
}

// MaxX returns the right edge of the frame.
func (f Frame) MaxX() float64 {
	return f.X + f.Width
}

// Contains reports whether x falls inside the frame.
func (f Frame) Contains(x float64) bool {
	return x >= f.X && x < f.MaxX()
}

// Segment is the visual element bound to one depth of the selected path.
// The controller owns every segment it creates and rebinds them on each
// layout pass.
type Segment interface {
	// Bind attaches the item shown at this depth, its index among its
	// siblings, and whether it is the tail of the path.
	Bind(item tree.Item, index int, last bool)
	// NaturalWidth sizes the segment to its content and returns that width.
	NaturalWidth() float64
	SetFrame(Frame)
	Frame() Frame
	Select()
	Deselect()
	SetEnabled(bool)
}

// Releaser is implemented by segments that hold resources to free once the
// controller drops them.
type Releaser interface {
	Release()
}

// SegmentFactory creates the segment for a depth the first time it is needed.
type SegmentFactory func(depth int) Segment
