package slogbackend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/internal/callsite"
)

// LevelTrace sits below slog.LevelDebug, mirroring Debug's distance from Info.
const LevelTrace = slog.LevelDebug - 4

// NameKey is the attribute carrying the logger name.
const NameKey = "logger"

// Backend bridges xfacade to log/slog.
//
// It is location-aware: LogLocation builds the slog.Record itself with the
// facade caller's PC, so handlers with AddSource report the application line.
type Backend struct {
	l    *slog.Logger
	name string
}

var _ xfacade.LocationAwareBackend = (*Backend)(nil)

// New binds name onto l and wraps it. A nil l uses slog.Default().
func New(l *slog.Logger, name string) *Backend {
	if l == nil {
		l = slog.Default()
	}
	if name != "" {
		l = l.With(slog.String(NameKey, name))
	}
	return &Backend{l: l, name: name}
}

func (b *Backend) Name() string { return b.name }

func (b *Backend) enabled(lvl slog.Level) bool {
	return b.l.Enabled(context.Background(), lvl)
}

func (b *Backend) IsTraceEnabled() bool { return b.enabled(LevelTrace) }
func (b *Backend) IsDebugEnabled() bool { return b.enabled(slog.LevelDebug) }
func (b *Backend) IsInfoEnabled() bool  { return b.enabled(slog.LevelInfo) }
func (b *Backend) IsWarnEnabled() bool  { return b.enabled(slog.LevelWarn) }
func (b *Backend) IsErrorEnabled() bool { return b.enabled(slog.LevelError) }

func (b *Backend) Trace(msg string) { b.l.Log(context.Background(), LevelTrace, msg) }
func (b *Backend) Debug(msg string) { b.l.Debug(msg) }
func (b *Backend) Info(msg string)  { b.l.Info(msg) }

func (b *Backend) Warn(msg string, err error) {
	b.l.LogAttrs(context.Background(), slog.LevelWarn, msg, errAttrs(err)...)
}

func (b *Backend) Error(msg string, err error) {
	b.l.LogAttrs(context.Background(), slog.LevelError, msg, errAttrs(err)...)
}

// LogLocation emits a record whose PC is the first frame outside boundary.
// Non-empty args format msg with fmt.Sprintf.
func (b *Backend) LogLocation(marker xfacade.Marker, boundary string, code xfacade.LevelCode, msg string, args []any, err error) {
	ctx := context.Background()
	lvl := toSlog(code)
	h := b.l.Handler()
	if !h.Enabled(ctx, lvl) {
		return
	}

	var pc uintptr
	if site, ok := callsite.Resolve(boundary); ok {
		pc = site.PC
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	r := slog.NewRecord(xclock.Now(), lvl, msg, pc)
	if marker != nil {
		r.AddAttrs(slog.String("marker", marker.Name()))
	}
	r.AddAttrs(errAttrs(err)...)
	_ = h.Handle(ctx, r)
}

func errAttrs(err error) []slog.Attr {
	if err == nil {
		return nil
	}
	return []slog.Attr{slog.Any("error", err)}
}

func toSlog(c xfacade.LevelCode) slog.Level {
	switch {
	case c <= xfacade.CodeTrace:
		return LevelTrace
	case c <= xfacade.CodeDebug:
		return slog.LevelDebug
	case c <= xfacade.CodeInfo:
		return slog.LevelInfo
	case c <= xfacade.CodeWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
