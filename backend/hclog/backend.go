package hclogbackend

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/internal/callsite"
)

// CallerKey carries the facade caller when location is enabled.
const CallerKey = "@caller"

// Backend bridges xfacade to hashicorp/go-hclog.
//
// hclog has no API to pass an explicit caller, so this is a plain backend:
// the adapter calls the per-level methods directly. WithLocation resolves
// the frame that called the Adapter and attaches it under CallerKey.
type Backend struct {
	l        hclog.Logger
	location bool
}

var _ xfacade.Backend = (*Backend)(nil)

type Option func(*Backend)

// WithLocation attaches the caller of the xfacade.Adapter to every message.
func WithLocation() Option {
	return func(b *Backend) { b.location = true }
}

// New wraps l. A nil l discards everything.
func New(l hclog.Logger, opts ...Option) *Backend {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	b := &Backend{l: l}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Backend) Name() string { return b.l.Name() }

func (b *Backend) IsTraceEnabled() bool { return b.l.IsTrace() }
func (b *Backend) IsDebugEnabled() bool { return b.l.IsDebug() }
func (b *Backend) IsInfoEnabled() bool  { return b.l.IsInfo() }
func (b *Backend) IsWarnEnabled() bool  { return b.l.IsWarn() }
func (b *Backend) IsErrorEnabled() bool { return b.l.IsError() }

func (b *Backend) Trace(msg string) { b.l.Trace(msg, b.args(nil)...) }
func (b *Backend) Debug(msg string) { b.l.Debug(msg, b.args(nil)...) }
func (b *Backend) Info(msg string)  { b.l.Info(msg, b.args(nil)...) }

func (b *Backend) Warn(msg string, err error)  { b.l.Warn(msg, b.args(err)...) }
func (b *Backend) Error(msg string, err error) { b.l.Error(msg, b.args(err)...) }

// args builds the hclog key/value pairs. It runs inside the Adapter's call
// chain, so the caller is the first frame outside xfacade.AdapterIdentity.
func (b *Backend) args(err error) []any {
	var kv []any
	if b.location {
		if site, ok := callsite.Resolve(xfacade.AdapterIdentity); ok {
			kv = append(kv, CallerKey, fmt.Sprintf("%s:%d", site.File, site.Line))
		}
	}
	if err != nil {
		kv = append(kv, "error", err)
	}
	return kv
}

func toHclogLevel(l xfacade.Level) hclog.Level {
	switch l {
	case xfacade.LevelTrace:
		return hclog.Trace
	case xfacade.LevelDebug:
		return hclog.Debug
	case xfacade.LevelWarn:
		return hclog.Warn
	case xfacade.LevelError:
		return hclog.Error
	default:
		return hclog.Info
	}
}
