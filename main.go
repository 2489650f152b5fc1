package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/jumpbar/internal/app"
	"github.com/atomicstack/jumpbar/internal/config"
	"github.com/atomicstack/jumpbar/internal/logging"
	"github.com/atomicstack/jumpbar/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	size, found := detectTerminal(stdDescriptors(), probeTerminal)
	runtimeCfg.App = withTerminalSize(runtimeCfg.App, size, found)

	events.App.Start(startupTracePayload(runtimeCfg, size, found))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize is the size of the terminal found on a standard descriptor.
type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptor struct {
	name string
	fd   int
}

type sizeProbe func(fd int) (width, height int, err error)

var errNotTerminal = errors.New("not a terminal")

func stdDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

func probeTerminal(fd int) (int, int, error) {
	if fd < 0 || !term.IsTerminal(fd) {
		return 0, 0, errNotTerminal
	}
	return term.GetSize(fd)
}

// detectTerminal returns the size reported by the first descriptor that is
// a terminal with a usable width.
func detectTerminal(fds []descriptor, probe sizeProbe) (terminalSize, bool) {
	for _, d := range fds {
		width, height, err := probe(d.fd)
		if err != nil || width <= 0 {
			continue
		}
		return terminalSize{Source: d.name, Width: width, Height: height}, true
	}
	return terminalSize{}, false
}

// withTerminalSize lays out the first frame at the detected size. A -width
// flag keeps precedence over the detected width.
func withTerminalSize(cfg app.Config, size terminalSize, found bool) app.Config {
	if !found {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = size.Width
	}
	if size.Height > 0 {
		cfg.InitialHeight = size.Height
	}
	return cfg
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, size terminalSize, found bool) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"source": treeSource(cfg),
	}
	if found {
		payload["terminal"] = size
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// treeSource names where the item tree comes from.
func treeSource(cfg config.Config) string {
	switch {
	case cfg.App.TreePath == "":
		return "demo"
	case cfg.App.Watch:
		return "watch:" + cfg.App.TreePath
	default:
		return "file:" + cfg.App.TreePath
	}
}
