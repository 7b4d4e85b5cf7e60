package zerologbackend

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xfacade"
)

// Config is an explicit, code-first configuration for zerolog + xfacade.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer     // default: os.Stdout
	MinLevel          xfacade.Level // default: LevelInfo
	Console           bool          // pretty console output instead of JSON
	ConsoleTimeFormat string        // only used if Console==true; default time.RFC3339Nano
	Caller            bool          // write the facade caller under zerolog.CallerFieldName
}

// Use builds a zerolog logger from Config, installs a global xfacade Factory
// handing out zerolog-backed loggers, and returns it.
func Use(cfg Config) *xfacade.Factory {
	zl := NewLogger(cfg)
	f, err := xfacade.NewBuilder().
		WithBackendFactory(func(name string) xfacade.Backend { return New(zl, name, WithCaller(cfg.Caller)) }).
		Build()
	if err != nil {
		// Build only fails without a backend factory, which cannot happen here.
		panic(err)
	}
	xfacade.SetGlobal(f)
	return f
}

// NewLogger builds the root zerolog logger described by cfg.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	minLevel := cfg.MinLevel
	if !minLevel.Valid() {
		minLevel = xfacade.LevelInfo
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Align the console's leading timestamp column with the "ts" key.
		// Note: zerolog.TimestampFieldName is process-global.
		zerolog.TimestampFieldName = "ts"
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	return zl.Level(mapLevel(minLevel.Code()))
}
