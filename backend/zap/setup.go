package zapbackend

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xfacade"
)

// Config is an explicit, code-first configuration for zap + xfacade.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer             // default: os.Stdout
	MinLevel           xfacade.Level         // default: LevelInfo
	Console            bool                  // console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	Caller             bool                  // render the facade caller
	TimestampFieldName string                // default "ts"
}

// Use builds a zap logger from Config, installs a global xfacade Factory
// handing out zap-backed loggers named with zap.Logger.Named, and returns it.
func Use(cfg Config) *xfacade.Factory {
	zl := NewLogger(cfg)
	tsKey := cfg.TimestampFieldName

	f, err := xfacade.NewBuilder().
		WithBackendFactory(func(name string) xfacade.Backend {
			return NewWithTimestampKey(zl.Named(name), tsKey)
		}).
		Build()
	if err != nil {
		panic(err)
	}
	xfacade.SetGlobal(f)
	return f
}

// NewLogger builds the root zap logger described by cfg.
func NewLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	minLevel := cfg.MinLevel
	if !minLevel.Valid() {
		minLevel = xfacade.LevelInfo
	}

	// Encoder config defaults: do not let zap inject its own time (the backend writes "ts").
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeLevel == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "message",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}
	encCfg.TimeKey = ""
	if !cfg.Caller {
		encCfg.CallerKey = ""
	} else {
		if encCfg.CallerKey == "" {
			encCfg.CallerKey = "caller"
		}
		if encCfg.EncodeCaller == nil {
			encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), toZapLevel(minLevel.Code()))

	// Caller comes from the facade call site, not from zap.AddCaller.
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))
}
