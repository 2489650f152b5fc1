package events

import "github.com/atomicstack/jumpbar/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Key(key string, popup bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "popup": popup})
}

func (UITracer) SegmentFocus(depth int) {
	logging.Trace("ui.segment.focus", map[string]interface{}{"depth": depth})
}

func (UITracer) MenuCursor(path string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"path": path, "cursor": cursor})
}

func (FilterTracer) Cleared(path string) {
	logging.Trace("filter.clear", map[string]interface{}{"path": path})
}

func (FilterTracer) Append(path, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"path": path, "filter": filter})
}

func (FilterTracer) Backspace(path, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"path": path, "filter": filter})
}

func (FilterTracer) WordBackspace(path, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"path": path, "filter": filter})
}
