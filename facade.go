package xfacade

import "reflect"

// Facade helpers using the global Factory.
// Usage: var log = xfacade.Get("billing.Invoicer"); log.Info("issued")

// Get returns the global Logger for name.
func Get(name string) Logger { return Global().Logger(name) }

// GetFor returns the global Logger named after v's type,
// e.g. "github.com/acme/billing.Invoicer".
func GetFor(v any) Logger { return Get(TypeName(v)) }

// TypeName is the logger name GetFor derives from v.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
