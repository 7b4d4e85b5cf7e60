// Package metrics counts emitted log messages per logger and level with
// Prometheus, as a Backend decorator.
package metrics

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/xfacade"
)

// Collector owns the xfacade_messages_total counter.
type Collector struct {
	messages *prometheus.CounterVec
}

// NewCollector registers the counter with reg (prometheus.DefaultRegisterer
// when nil). Registering twice on the same registry reuses the first counter.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xfacade_messages_total",
			Help: "The count of messages handed to logging backends",
		}, []string{"logger", "level"}),
	}
	if err := reg.Register(c.messages); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				c.messages = existing
				return c, nil
			}
		}
		return nil, errors.Wrap(err, "register xfacade_messages_total")
	}
	return c, nil
}

func (c *Collector) inc(name string, l xfacade.Level) {
	c.messages.WithLabelValues(name, strings.ToLower(l.String())).Inc()
}

// Instrument wraps b so every emission is counted. The result is a
// LocationAwareBackend exactly when b is one.
func Instrument(b xfacade.Backend, c *Collector) xfacade.Backend {
	cb := &counted{Backend: b, c: c}
	if la, ok := b.(xfacade.LocationAwareBackend); ok {
		return &countedLocated{counted: cb, la: la}
	}
	return cb
}

// InstrumentFactory applies Instrument to every backend f creates.
func InstrumentFactory(f xfacade.BackendFactory, c *Collector) xfacade.BackendFactory {
	return func(name string) xfacade.Backend { return Instrument(f(name), c) }
}

type counted struct {
	xfacade.Backend
	c *Collector
}

func (b *counted) Trace(msg string) {
	b.c.inc(b.Name(), xfacade.LevelTrace)
	b.Backend.Trace(msg)
}

func (b *counted) Debug(msg string) {
	b.c.inc(b.Name(), xfacade.LevelDebug)
	b.Backend.Debug(msg)
}

func (b *counted) Info(msg string) {
	b.c.inc(b.Name(), xfacade.LevelInfo)
	b.Backend.Info(msg)
}

func (b *counted) Warn(msg string, err error) {
	b.c.inc(b.Name(), xfacade.LevelWarn)
	b.Backend.Warn(msg, err)
}

func (b *counted) Error(msg string, err error) {
	b.c.inc(b.Name(), xfacade.LevelError)
	b.Backend.Error(msg, err)
}

type countedLocated struct {
	*counted
	la xfacade.LocationAwareBackend
}

func (b *countedLocated) LogLocation(marker xfacade.Marker, boundary string, code xfacade.LevelCode, msg string, args []any, err error) {
	b.c.inc(b.Name(), code.Level())
	b.la.LogLocation(marker, boundary, code, msg, args, err)
}
