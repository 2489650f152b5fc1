package events

import "github.com/atomicstack/jumpbar/internal/logging"

type BarTracer struct{}

var Bar = BarTracer{}

func (BarTracer) Select(path, title string) {
	logging.Trace("bar.select", map[string]interface{}{"path": path, "title": title})
}

func (BarTracer) SelectRejected(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("bar.select.rejected", payload)
}

func (BarTracer) SelectSuperseded(path string) {
	logging.Trace("bar.select.superseded", map[string]interface{}{"path": path})
}

func (BarTracer) Layout(segments int, total, available float64, compressed bool) {
	logging.Trace("bar.layout", map[string]interface{}{
		"segments":   segments,
		"total":      total,
		"available":  available,
		"compressed": compressed,
	})
}

func (BarTracer) Resize(width float64, relayout bool) {
	logging.Trace("bar.resize", map[string]interface{}{"width": width, "relayout": relayout})
}

func (BarTracer) MenuOpen(path string, items int) {
	logging.Trace("bar.menu.open", map[string]interface{}{"path": path, "items": items})
}

func (BarTracer) MenuClose(path string, picked bool, index int) {
	logging.Trace("bar.menu.close", map[string]interface{}{"path": path, "picked": picked, "index": index})
}
