package xfacade

import (
	"sync"
	"sync/atomic"
)

// defaultBackendFactory is set by a backend package (e.g. backend/zerolog)
// in its init() to avoid import cycles. Global() falls back to it.
var (
	defaultMu             sync.Mutex
	defaultBackendFactory BackendFactory
)

// RegisterDefaultBackendFactory registers the backends used by Default().
// Backend packages call this from init():
//
//	func init() {
//	  xfacade.RegisterDefaultBackendFactory(func(name string) xfacade.Backend {
//	    return zerologbackend.New(zerolog.New(os.Stdout), name)
//	  })
//	}
func RegisterDefaultBackendFactory(f BackendFactory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultBackendFactory = f
}

// Default builds a Factory from the registered default backend factory.
// Panics if none is registered.
func Default() *Factory {
	defaultMu.Lock()
	f := defaultBackendFactory
	defaultMu.Unlock()
	if f == nil {
		panic("xfacade: no default backend registered. Import a backend package or call xfacade.RegisterDefaultBackendFactory")
	}
	return newFactory(Config{Backends: f})
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Factory]

// SetGlobal sets the global Factory. Loggers already handed out keep their
// backend.
func SetGlobal(f *Factory) { global.Store(f) }

// Global returns the global Factory, installing Default() on first use.
func Global() *Factory {
	if f := global.Load(); f != nil {
		return f
	}
	global.CompareAndSwap(nil, Default())
	return global.Load()
}
