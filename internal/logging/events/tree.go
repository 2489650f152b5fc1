package events

import "github.com/atomicstack/jumpbar/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Installed(roots int) {
	logging.Trace("tree.install", map[string]interface{}{"roots": roots})
}

func (TreeTracer) Loaded(source string, roots int) {
	logging.Trace("tree.load", map[string]interface{}{"source": source, "roots": roots})
}

func (TreeTracer) LoadFailed(source string, err error) {
	payload := map[string]interface{}{"source": source}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tree.load.error", payload)
}

func (TreeTracer) WatchEvent(source, op string) {
	logging.Trace("tree.watch", map[string]interface{}{"source": source, "op": op})
}
