package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/jumpbar/internal/app"
	"github.com/atomicstack/jumpbar/internal/tree"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTree    = "JUMPBAR_TREE"
	envWidth   = "JUMPBAR_WIDTH"
	envWatch   = "JUMPBAR_WATCH"
	envSelect  = "JUMPBAR_SELECT"
	envFooter  = "JUMPBAR_FOOTER"
	envTrace   = "JUMPBAR_TRACE"
	envLogFile = "JUMPBAR_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("jumpbar", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	treePath := fs.String("tree", envOrDefault(env, envTree, ""), "path to a YAML item tree (the demo trees are used when empty)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "bar width in cells (0 uses terminal width)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the tree file when it changes")
	sel := fs.String("select", envOrDefault(env, envSelect, ""), "dotted index path to select at startup, e.g. 0.1")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	var selectPath tree.Path
	if strings.TrimSpace(*sel) != "" {
		parsed, err := tree.ParsePath(*sel)
		if err != nil {
			return Config{}, fmt.Errorf("select: %w", err)
		}
		selectPath = parsed
	}

	cfg := Config{
		App: app.Config{
			TreePath:   *treePath,
			Width:      *width,
			Watch:      *watch,
			Select:     selectPath,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tree":    *treePath,
			"width":   strconv.Itoa(*width),
			"watch":   strconv.FormatBool(*watch),
			"select":  *sel,
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks option combinations that flag parsing cannot.
func Validate(cfg Config) error {
	if cfg.App.Watch && strings.TrimSpace(cfg.App.TreePath) == "" {
		return errors.New("-watch requires -tree")
	}
	if cfg.App.TreePath != "" {
		info, err := os.Stat(cfg.App.TreePath)
		if err != nil {
			return fmt.Errorf("tree file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("tree file %s is a directory", cfg.App.TreePath)
		}
	}
	return nil
}
