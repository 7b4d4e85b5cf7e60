package zapbackend

import (
	"fmt"
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/internal/callsite"
)

// Backend bridges xfacade to go.uber.org/zap.
//
// It is location-aware: LogLocation resolves the facade caller and writes it
// as the entry's caller, so encoders with a CallerKey report the application
// line instead of this package. Trace maps to zap's debug level.
type Backend struct {
	l     *zap.Logger
	tsKey string // timestamp field key; default "ts"
}

var _ xfacade.LocationAwareBackend = (*Backend)(nil)

// New creates a backend for the provided zap logger.
func New(l *zap.Logger) *Backend {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Backend {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Backend{l: l, tsKey: tsKey}
}

// Name is the zap logger name, as set by zap.Logger.Named.
func (b *Backend) Name() string { return b.l.Name() }

func (b *Backend) IsTraceEnabled() bool { return b.l.Core().Enabled(zapcore.DebugLevel) }
func (b *Backend) IsDebugEnabled() bool { return b.l.Core().Enabled(zapcore.DebugLevel) }
func (b *Backend) IsInfoEnabled() bool  { return b.l.Core().Enabled(zapcore.InfoLevel) }
func (b *Backend) IsWarnEnabled() bool  { return b.l.Core().Enabled(zapcore.WarnLevel) }
func (b *Backend) IsErrorEnabled() bool { return b.l.Core().Enabled(zapcore.ErrorLevel) }

func (b *Backend) Trace(msg string)            { b.log(zapcore.DebugLevel, msg, nil) }
func (b *Backend) Debug(msg string)            { b.log(zapcore.DebugLevel, msg, nil) }
func (b *Backend) Info(msg string)             { b.log(zapcore.InfoLevel, msg, nil) }
func (b *Backend) Warn(msg string, err error)  { b.log(zapcore.WarnLevel, msg, err) }
func (b *Backend) Error(msg string, err error) { b.log(zapcore.ErrorLevel, msg, err) }

// LogLocation emits with the caller set to the first frame outside boundary.
// Non-empty args format msg with fmt.Sprintf.
func (b *Backend) LogLocation(marker xfacade.Marker, boundary string, code xfacade.LevelCode, msg string, args []any, err error) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	// Fast path: skip if disabled. Avoids resolving the caller.
	ce := b.l.Check(toZapLevel(code), msg)
	if ce == nil {
		return
	}
	if site, ok := callsite.Resolve(boundary); ok {
		ce.Caller = zapcore.EntryCaller{
			Defined:  true,
			PC:       site.PC,
			File:     site.File,
			Line:     site.Line,
			Function: site.Function,
		}
	}
	ce.Write(b.fields(marker, err)...)
}

func (b *Backend) log(lvl zapcore.Level, msg string, err error) {
	ce := b.l.Check(lvl, msg)
	if ce == nil {
		return
	}
	ce.Write(b.fields(nil, err)...)
}

func (b *Backend) fields(marker xfacade.Marker, err error) []zap.Field {
	zfs := make([]zap.Field, 0, 3)

	// Ensure RFC3339Nano precision regardless of encoder defaults.
	zfs = append(zfs, zap.String(b.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
	if marker != nil {
		zfs = append(zfs, zap.String("marker", marker.Name()))
	}
	if err != nil {
		zfs = append(zfs, zap.Error(err))
	}
	return zfs
}

func toZapLevel(c xfacade.LevelCode) zapcore.Level {
	switch {
	case c <= xfacade.CodeDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case c <= xfacade.CodeInfo:
		return zapcore.InfoLevel
	case c <= xfacade.CodeWarn:
		return zapcore.WarnLevel
	default:
		// Avoid DPanic/Fatal to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}
