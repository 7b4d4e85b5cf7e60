package zerologbackend

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/internal/callsite"
)

// NameFieldName is the field carrying the logger name.
const NameFieldName = "logger"

// Backend bridges xfacade to rs/zerolog.
//
// It is location-aware: LogLocation writes the facade caller under
// zerolog.CallerFieldName using zerolog.CallerMarshalFunc.
type Backend struct {
	l      zerolog.Logger
	name   string
	caller bool
}

var _ xfacade.LocationAwareBackend = (*Backend)(nil)

type Option func(*Backend)

// WithCaller toggles the caller field (on by default).
func WithCaller(on bool) Option {
	return func(b *Backend) { b.caller = on }
}

// New binds name onto l and wraps it.
func New(l zerolog.Logger, name string, opts ...Option) *Backend {
	if name != "" {
		l = l.With().Str(NameFieldName, name).Logger()
	}
	b := &Backend{l: l, name: name, caller: true}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Backend) Name() string { return b.name }

// enabled honours both the logger's and zerolog's global level.
func (b *Backend) enabled(lvl zerolog.Level) bool {
	return lvl >= b.l.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (b *Backend) IsTraceEnabled() bool { return b.enabled(zerolog.TraceLevel) }
func (b *Backend) IsDebugEnabled() bool { return b.enabled(zerolog.DebugLevel) }
func (b *Backend) IsInfoEnabled() bool  { return b.enabled(zerolog.InfoLevel) }
func (b *Backend) IsWarnEnabled() bool  { return b.enabled(zerolog.WarnLevel) }
func (b *Backend) IsErrorEnabled() bool { return b.enabled(zerolog.ErrorLevel) }

func (b *Backend) Trace(msg string)            { b.msg(b.l.Trace(), msg, nil) }
func (b *Backend) Debug(msg string)            { b.msg(b.l.Debug(), msg, nil) }
func (b *Backend) Info(msg string)             { b.msg(b.l.Info(), msg, nil) }
func (b *Backend) Warn(msg string, err error)  { b.msg(b.l.Warn(), msg, err) }
func (b *Backend) Error(msg string, err error) { b.msg(b.l.Error(), msg, err) }

// LogLocation emits with the caller set to the first frame outside boundary.
// Non-empty args format msg with fmt.Sprintf.
func (b *Backend) LogLocation(marker xfacade.Marker, boundary string, code xfacade.LevelCode, msg string, args []any, err error) {
	zlvl := mapLevel(code)

	// Fast path: drop early if below min level (no Event allocation).
	if !b.enabled(zlvl) {
		return
	}

	ev := b.l.WithLevel(zlvl)
	if b.caller {
		if site, ok := callsite.Resolve(boundary); ok {
			ev.Str(zerolog.CallerFieldName, zerolog.CallerMarshalFunc(site.PC, site.File, site.Line))
		}
	}
	if marker != nil {
		ev.Str("marker", marker.Name())
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	b.msg(ev, msg, err)
}

func (b *Backend) msg(ev *zerolog.Event, msg string, err error) {
	if ev == nil {
		return
	}
	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat defaults.
	ev.Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		ev.Err(err)
	}
	ev.Msg(msg)
}

// mapLevel converts a facade level code to zerolog.Level.
func mapLevel(c xfacade.LevelCode) zerolog.Level {
	switch {
	case c <= xfacade.CodeTrace:
		return zerolog.TraceLevel
	case c <= xfacade.CodeDebug:
		return zerolog.DebugLevel
	case c <= xfacade.CodeInfo:
		return zerolog.InfoLevel
	case c <= xfacade.CodeWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
