package slogbackend

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xfacade"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xfacade.
type Config struct {
	Writer         io.Writer            // default: os.Stdout
	MinLevel       xfacade.Level        // default: LevelInfo
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level is managed by Use
	Source         bool                 // report the facade caller (slog AddSource)
}

// Use builds a slog logger from Config, installs a global xfacade Factory
// handing out slog-backed loggers, and returns it.
func Use(cfg Config) *xfacade.Factory {
	sl := NewLogger(cfg)
	f, err := xfacade.NewBuilder().
		WithBackendFactory(func(name string) xfacade.Backend { return New(sl, name) }).
		Build()
	if err != nil {
		panic(err)
	}
	xfacade.SetGlobal(f)
	return f
}

// NewLogger builds the root slog logger described by cfg.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	minLevel := cfg.MinLevel
	if !minLevel.Valid() {
		minLevel = xfacade.LevelInfo
	}

	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	opts.Level = toSlog(minLevel.Code())
	if cfg.Source {
		opts.AddSource = true
	}
	opts.ReplaceAttr = traceLevelName(opts.ReplaceAttr)

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return slog.New(h)
}

// traceLevelName renders LevelTrace as "TRACE" instead of "DEBUG-4", then
// applies next.
func traceLevelName(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.LevelKey {
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
		}
		if next != nil {
			return next(groups, a)
		}
		return a
	}
}
