package xfacade

import (
	"reflect"

	"github.com/pkg/errors"
)

// Logger is the backend-agnostic logging facade.
type Logger interface {
	Name() string

	// Enabled reports whether the backend would record messages at level.
	// Invalid levels report false.
	Enabled(level Level) bool
	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	// Log dispatches msg to the method for level. It fails with
	// ErrInvalidLevel for anything outside TRACE..ERROR.
	Log(level Level, msg string) error

	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	WarnErr(msg string, err error)
	Error(msg string)
	ErrorErr(msg string, err error)

	// SetLevel changes the effective threshold. Implementations that cannot
	// do it at runtime return ErrUnsupported.
	SetLevel(level Level) error
}

// AdapterIdentity is the reporting identity the Adapter hands to
// location-aware backends: every stack frame whose function has this prefix
// belongs to the adapter.
var AdapterIdentity = reflect.TypeOf(Adapter{}).PkgPath() + ".(*Adapter)"

var _ Logger = (*Adapter)(nil)

// Adapter forwards facade calls to one Backend. Whether the backend is
// location-aware is decided once in NewAdapter; the Adapter is immutable
// afterwards.
type Adapter struct {
	backend Backend
	located LocationAwareBackend // nil for plain backends
}

// NewAdapter wraps b.
func NewAdapter(b Backend) *Adapter {
	a := &Adapter{backend: b}
	if la, ok := b.(LocationAwareBackend); ok {
		a.located = la
	}
	return a
}

// LocationAware reports whether emissions carry the caller location.
func (a *Adapter) LocationAware() bool { return a.located != nil }

// Backend returns the wrapped backend.
func (a *Adapter) Backend() Backend { return a.backend }

func (a *Adapter) Name() string { return a.backend.Name() }

func (a *Adapter) Enabled(level Level) bool {
	switch level {
	case LevelTrace:
		return a.backend.IsTraceEnabled()
	case LevelDebug:
		return a.backend.IsDebugEnabled()
	case LevelInfo:
		return a.backend.IsInfoEnabled()
	case LevelWarn:
		return a.backend.IsWarnEnabled()
	case LevelError:
		return a.backend.IsErrorEnabled()
	default:
		return false
	}
}

func (a *Adapter) IsTraceEnabled() bool { return a.backend.IsTraceEnabled() }
func (a *Adapter) IsDebugEnabled() bool { return a.backend.IsDebugEnabled() }
func (a *Adapter) IsInfoEnabled() bool  { return a.backend.IsInfoEnabled() }
func (a *Adapter) IsWarnEnabled() bool  { return a.backend.IsWarnEnabled() }
func (a *Adapter) IsErrorEnabled() bool { return a.backend.IsErrorEnabled() }

// SetLevel is not supported: thresholds belong to the backend's own
// configuration. It always returns ErrUnsupported and never touches the
// backend.
func (a *Adapter) SetLevel(level Level) error {
	return errors.Wrapf(ErrUnsupported, "set level %s", level)
}

// The emission methods below are kept out of the inliner so that the frame
// calling them stays distinct from the adapter's own frames.

//go:noinline
func (a *Adapter) Log(level Level, msg string) error {
	if !level.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "log %s", level)
	}
	a.emit(level, msg, nil)
	return nil
}

//go:noinline
func (a *Adapter) Trace(msg string) { a.emit(LevelTrace, msg, nil) }

//go:noinline
func (a *Adapter) Debug(msg string) { a.emit(LevelDebug, msg, nil) }

//go:noinline
func (a *Adapter) Info(msg string) { a.emit(LevelInfo, msg, nil) }

//go:noinline
func (a *Adapter) Warn(msg string) { a.emit(LevelWarn, msg, nil) }

//go:noinline
func (a *Adapter) WarnErr(msg string, err error) { a.emit(LevelWarn, msg, err) }

//go:noinline
func (a *Adapter) Error(msg string) { a.emit(LevelError, msg, nil) }

//go:noinline
func (a *Adapter) ErrorErr(msg string, err error) { a.emit(LevelError, msg, err) }

// emit issues exactly one backend call for a valid level.
func (a *Adapter) emit(level Level, msg string, err error) {
	if a.located != nil {
		a.located.LogLocation(nil, AdapterIdentity, level.Code(), msg, nil, err)
		return
	}
	switch level {
	case LevelTrace:
		a.backend.Trace(msg)
	case LevelDebug:
		a.backend.Debug(msg)
	case LevelInfo:
		a.backend.Info(msg)
	case LevelWarn:
		a.backend.Warn(msg, err)
	case LevelError:
		a.backend.Error(msg, err)
	}
}
