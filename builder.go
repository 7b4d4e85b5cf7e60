package xfacade

import "sync"

// BackendFactory creates the backend logger for a named component.
type BackendFactory func(name string) Backend

// Config for constructing a Factory.
type Config struct {
	Backends BackendFactory
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithBackendFactory(f BackendFactory) *Builder {
	b.cfg.Backends = f
	return b
}

// Build constructs the Factory.
func (b *Builder) Build() (*Factory, error) {
	if b.cfg.Backends == nil {
		return nil, ErrNoBackend
	}
	return newFactory(b.cfg), nil
}

// Factory hands out one Logger per name and caches it for the process
// lifetime.
type Factory struct {
	newBackend BackendFactory

	// name -> *Adapter; lock-free reads, mu serializes creation.
	loggers sync.Map
	mu      sync.Mutex
}

func newFactory(cfg Config) *Factory {
	return &Factory{newBackend: cfg.Backends}
}

// Logger returns the cached Logger for name, creating it on first use.
func (f *Factory) Logger(name string) Logger {
	if v, ok := f.loggers.Load(name); ok {
		return v.(*Adapter)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.loggers.Load(name); ok {
		return v.(*Adapter)
	}
	a := NewAdapter(f.newBackend(name))
	f.loggers.Store(name, a)
	return a
}
