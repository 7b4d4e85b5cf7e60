package xfacade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/backend/observer"
)

type invoicer struct{}

// These tests swap process-wide state and must not run in parallel.

func resetGlobals(t *testing.T) {
	t.Helper()
	xfacade.SetGlobal(nil)
	xfacade.RegisterDefaultBackendFactory(nil)
	t.Cleanup(func() {
		xfacade.SetGlobal(nil)
		xfacade.RegisterDefaultBackendFactory(nil)
	})
}

func TestGlobal_PanicsWithoutBackend(t *testing.T) {
	resetGlobals(t)

	assert.Panics(t, func() { xfacade.Get("svc") })
}

func TestGlobal_UsesRegisteredDefault(t *testing.T) {
	resetGlobals(t)

	backends := map[string]*observer.Backend{}
	xfacade.RegisterDefaultBackendFactory(func(name string) xfacade.Backend {
		b := observer.New(name)
		backends[name] = b
		return b
	})

	l := xfacade.Get("svc")
	l.Info("hello")

	assert.Same(t, l, xfacade.Get("svc"))
	require.Contains(t, backends, "svc")
	assert.Equal(t, []observer.Call{{Method: observer.MethodInfo, Level: xfacade.LevelInfo, Msg: "hello"}}, backends["svc"].Calls())
}

func TestSetGlobal_TakesPrecedence(t *testing.T) {
	resetGlobals(t)

	rec := observer.NewLocationAware("shared")
	f, err := xfacade.NewBuilder().
		WithBackendFactory(func(string) xfacade.Backend { return rec }).
		Build()
	require.NoError(t, err)
	xfacade.SetGlobal(f)

	assert.Same(t, f, xfacade.Global())
	xfacade.GetFor(&invoicer{}).Warn("late")

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, observer.MethodLogLocation, calls[0].Method)
	assert.Equal(t, xfacade.CodeWarn, calls[0].Code)
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "github.com/trickstertwo/xfacade_test.invoicer", xfacade.TypeName(invoicer{}))
	assert.Equal(t, "github.com/trickstertwo/xfacade_test.invoicer", xfacade.TypeName(&invoicer{}))
	assert.Equal(t, "string", xfacade.TypeName(""))
	assert.Equal(t, "nil", xfacade.TypeName(nil))
}
