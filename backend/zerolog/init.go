package zerologbackend

import (
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/trickstertwo/xfacade"
)

// envConfig drives the default backend registered by init.
//
//	XFACADE_LEVEL:  trace|debug|info|warn|error (default info)
//	XFACADE_FORMAT: auto|json|console (default auto: console on a terminal)
//	XFACADE_CONSOLE_TIMEFORMAT: console time layout (default RFC3339Nano)
//	XFACADE_CALLER: include the facade caller (default true)
type envConfig struct {
	Level             string `env:"XFACADE_LEVEL" envDefault:"info"`
	Format            string `env:"XFACADE_FORMAT" envDefault:"auto"`
	ConsoleTimeFormat string `env:"XFACADE_CONSOLE_TIMEFORMAT"`
	Caller            bool   `env:"XFACADE_CALLER" envDefault:"true"`
}

// Register this backend as the default for xfacade.Default()/Global().
func init() {
	xfacade.RegisterDefaultBackendFactory(defaultFactory())
}

// defaultFactory reads the environment and builds the root logger on first
// use, not at import.
func defaultFactory() xfacade.BackendFactory {
	cfg := sync.OnceValue(func() Config { return configFromEnv(os.Stdout.Fd()) })
	root := sync.OnceValue(func() zerolog.Logger { return NewLogger(cfg()) })
	return func(name string) xfacade.Backend { return New(root(), name, WithCaller(cfg().Caller)) }
}

// configFromEnv never fails: unparsable values fall back to defaults.
func configFromEnv(fd uintptr) Config {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		ec = envConfig{Level: "info", Format: "auto", Caller: true}
	}

	cfg := Config{Writer: os.Stdout, ConsoleTimeFormat: ec.ConsoleTimeFormat, Caller: ec.Caller}
	if lvl, err := xfacade.ParseLevel(ec.Level); err == nil {
		cfg.MinLevel = lvl
	}
	switch strings.ToLower(strings.TrimSpace(ec.Format)) {
	case "console":
		cfg.Console = true
	case "json":
		cfg.Console = false
	default:
		cfg.Console = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return cfg
}
