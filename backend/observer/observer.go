// Package observer provides backends that record every call they receive,
// for asserting how a facade Logger drives its backend.
package observer

import (
	"sync"

	"github.com/trickstertwo/xfacade"
)

// Method names a backend entry point.
type Method string

const (
	MethodTrace       Method = "Trace"
	MethodDebug       Method = "Debug"
	MethodInfo        Method = "Info"
	MethodWarn        Method = "Warn"
	MethodError       Method = "Error"
	MethodLogLocation Method = "LogLocation"
)

// Call is a read-only snapshot of one emission received by a backend.
// Marker, Boundary, Code and Args are only set for MethodLogLocation.
type Call struct {
	Method   Method
	Level    xfacade.Level
	Code     xfacade.LevelCode
	Marker   xfacade.Marker
	Boundary string
	Msg      string
	Args     []any
	Err      error
}

// Option configures a recording backend.
type Option func(*recorder)

// WithMinLevel makes the Is*Enabled queries report false below min.
// Emissions are recorded regardless.
func WithMinLevel(min xfacade.Level) Option {
	return func(r *recorder) { r.min = min }
}

type recorder struct {
	name string
	min  xfacade.Level

	mu    sync.Mutex
	calls []Call
}

func (r *recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Backend is a plain recording backend.
type Backend struct {
	r *recorder
}

var _ xfacade.Backend = (*Backend)(nil)

// New creates a plain recording backend named name. It enables every level
// unless WithMinLevel says otherwise.
func New(name string, opts ...Option) *Backend {
	r := &recorder{name: name, min: xfacade.LevelTrace}
	for _, o := range opts {
		o(r)
	}
	return &Backend{r: r}
}

func (b *Backend) Name() string { return b.r.name }

func (b *Backend) enabled(l xfacade.Level) bool { return l >= b.r.min }

func (b *Backend) IsTraceEnabled() bool { return b.enabled(xfacade.LevelTrace) }
func (b *Backend) IsDebugEnabled() bool { return b.enabled(xfacade.LevelDebug) }
func (b *Backend) IsInfoEnabled() bool  { return b.enabled(xfacade.LevelInfo) }
func (b *Backend) IsWarnEnabled() bool  { return b.enabled(xfacade.LevelWarn) }
func (b *Backend) IsErrorEnabled() bool { return b.enabled(xfacade.LevelError) }

func (b *Backend) Trace(msg string) {
	b.r.record(Call{Method: MethodTrace, Level: xfacade.LevelTrace, Msg: msg})
}

func (b *Backend) Debug(msg string) {
	b.r.record(Call{Method: MethodDebug, Level: xfacade.LevelDebug, Msg: msg})
}

func (b *Backend) Info(msg string) {
	b.r.record(Call{Method: MethodInfo, Level: xfacade.LevelInfo, Msg: msg})
}

func (b *Backend) Warn(msg string, err error) {
	b.r.record(Call{Method: MethodWarn, Level: xfacade.LevelWarn, Msg: msg, Err: err})
}

func (b *Backend) Error(msg string, err error) {
	b.r.record(Call{Method: MethodError, Level: xfacade.LevelError, Msg: msg, Err: err})
}

// Calls returns a copy of the recorded calls, oldest first.
func (b *Backend) Calls() []Call {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()
	out := make([]Call, len(b.r.calls))
	copy(out, b.r.calls)
	return out
}

// Len returns the number of recorded calls.
func (b *Backend) Len() int {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()
	return len(b.r.calls)
}

// Reset drops the recorded calls.
func (b *Backend) Reset() {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()
	b.r.calls = nil
}

// LocationAware is a recording backend that also accepts LogLocation.
type LocationAware struct {
	*Backend
}

var _ xfacade.LocationAwareBackend = (*LocationAware)(nil)

// NewLocationAware creates a location-aware recording backend.
func NewLocationAware(name string, opts ...Option) *LocationAware {
	return &LocationAware{Backend: New(name, opts...)}
}

func (b *LocationAware) LogLocation(marker xfacade.Marker, boundary string, code xfacade.LevelCode, msg string, args []any, err error) {
	b.r.record(Call{
		Method:   MethodLogLocation,
		Level:    code.Level(),
		Code:     code,
		Marker:   marker,
		Boundary: boundary,
		Msg:      msg,
		Args:     args,
		Err:      err,
	})
}
