package hclogbackend

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
)

// Config is an explicit, code-first configuration for hclog + xfacade.
type Config struct {
	Writer   io.Writer     // default: os.Stderr
	MinLevel xfacade.Level // default: LevelInfo
	JSON     bool
	Color    bool // colorize console output on terminals

	// Location attaches the facade caller under CallerKey (see WithLocation).
	Location bool
}

// Use builds an hclog logger from Config, installs a global xfacade Factory
// handing out hclog-backed loggers named with hclog.Logger.Named, and
// returns it.
func Use(cfg Config) *xfacade.Factory {
	hl := NewLogger(cfg)
	var opts []Option
	if cfg.Location {
		opts = append(opts, WithLocation())
	}
	f, err := xfacade.NewBuilder().
		WithBackendFactory(func(name string) xfacade.Backend { return New(hl.Named(name), opts...) }).
		Build()
	if err != nil {
		panic(err)
	}
	xfacade.SetGlobal(f)
	return f
}

// NewLogger builds the root hclog logger described by cfg.
func NewLogger(cfg Config) hclog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	minLevel := cfg.MinLevel
	if !minLevel.Valid() {
		minLevel = xfacade.LevelInfo
	}
	color := hclog.ColorOff
	if cfg.Color {
		color = hclog.AutoColor
	}

	opts := &hclog.LoggerOptions{
		Output:     w,
		Level:      toHclogLevel(minLevel),
		JSONFormat: cfg.JSON,
		TimeFn:     xclock.Now,
		Color:      color,
	}
	return hclog.New(opts)
}
