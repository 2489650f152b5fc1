package jumpbar

import (
	"fmt"

	"github.com/atomicstack/jumpbar/internal/tree"
)

// fakeSegment sizes itself from a width table keyed by title, falling back
// to one unit per rune plus padding.
type fakeSegment struct {
	depth    int
	widths   map[string]float64
	item     tree.Item
	index    int
	last     bool
	frame    Frame
	selected bool
	enabled  bool
	released bool
	sized    int
}

func (s *fakeSegment) Bind(item tree.Item, index int, last bool) {
	s.item = item
	s.index = index
	s.last = last
}

func (s *fakeSegment) NaturalWidth() float64 {
	s.sized++
	title := tree.TitleOf(s.item)
	if w, ok := s.widths[title]; ok {
		return w
	}
	return float64(len([]rune(title)) + 4)
}

func (s *fakeSegment) SetFrame(f Frame)  { s.frame = f }
func (s *fakeSegment) Frame() Frame      { return s.frame }
func (s *fakeSegment) Select()           { s.selected = true }
func (s *fakeSegment) Deselect()         { s.selected = false }
func (s *fakeSegment) SetEnabled(b bool) { s.enabled = b }
func (s *fakeSegment) Release()          { s.released = true }

type segmentRecorder struct {
	widths  map[string]float64
	created []*fakeSegment
}

func (r *segmentRecorder) factory(depth int) Segment {
	seg := &fakeSegment{depth: depth, widths: r.widths}
	r.created = append(r.created, seg)
	return seg
}

type recordingDelegate struct {
	calls []string
	hook  func(call string)
}

func (d *recordingDelegate) record(call string) {
	d.calls = append(d.calls, call)
	if d.hook != nil {
		d.hook(call)
	}
}

func (d *recordingDelegate) WillOpenMenu(path tree.Path, items []tree.Item) {
	d.record(fmt.Sprintf("willOpen %s %d", path, len(items)))
}

func (d *recordingDelegate) DidOpenMenu(path tree.Path, items []tree.Item) {
	d.record(fmt.Sprintf("didOpen %s %d", path, len(items)))
}

func (d *recordingDelegate) WillSelect(item tree.Item, path tree.Path) {
	d.record(fmt.Sprintf("willSelect %s %s", path, tree.TitleOf(item)))
}

func (d *recordingDelegate) DidSelect(item tree.Item, path tree.Path) {
	d.record(fmt.Sprintf("didSelect %s %s", path, tree.TitleOf(item)))
}

func newTestController(widths map[string]float64) (*Controller, *segmentRecorder, *recordingDelegate) {
	rec := &segmentRecorder{widths: widths}
	del := &recordingDelegate{}
	c := New(rec.factory, del)
	c.Resize(1000)
	return c, rec, del
}

// scenarioTree is branch A with leaves A.0 and A.1.
func scenarioTree() []tree.Item {
	return []tree.Item{
		tree.NewBranch("A", "", tree.NewLeaf("A.0", ""), tree.NewLeaf("A.1", "")),
	}
}

// demoTree mirrors the first demo tree: one root with a separator among its
// children and a nested branch.
func demoTree() []tree.Item {
	return []tree.Item{
		tree.NewBranch("path 0", "",
			tree.NewLeaf("path 0.0", ""),
			tree.NewBranch("path 0.1", "",
				tree.NewLeaf("path 0.1.0", ""),
				tree.NewLeaf("path 0.1.1", ""),
			),
			tree.Separator{},
			tree.NewLeaf("path 0.3", ""),
		),
		tree.NewLeaf("path 1", ""),
	}
}

func segmentsOf(c *Controller) []*fakeSegment {
	segs := c.Segments()
	out := make([]*fakeSegment, len(segs))
	for i, s := range segs {
		out[i] = s.(*fakeSegment)
	}
	return out
}
