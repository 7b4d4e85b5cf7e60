package callsite_test

import (
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xfacade/internal/callsite"
)

type wrapper struct{}

var wrapperIdentity = reflect.TypeOf(wrapper{}).PkgPath() + ".(*wrapper)"

//go:noinline
func (w *wrapper) outer() (callsite.Site, bool) { return w.inner() }

//go:noinline
func (w *wrapper) inner() (callsite.Site, bool) { return callsite.Resolve(wrapperIdentity) }

func TestResolve_ReturnsFirstFrameAfterBoundary(t *testing.T) {
	t.Parallel()

	w := &wrapper{}
	_, _, line, _ := runtime.Caller(0)
	site, ok := w.outer()

	require.True(t, ok)
	assert.Equal(t, line+1, site.Line)
	assert.True(t, strings.HasSuffix(site.File, "callsite_test.go"), site.File)
	assert.True(t, strings.HasSuffix(site.Function, ".TestResolve_ReturnsFirstFrameAfterBoundary"), site.Function)
	assert.NotZero(t, site.PC)

	// The PC maps back to the same frame.
	f, _ := runtime.CallersFrames([]uintptr{site.PC}).Next()
	assert.Equal(t, site.Function, f.Function)
	assert.Equal(t, site.Line, f.Line)
}

func TestResolve_NoBoundaryOnStack(t *testing.T) {
	t.Parallel()

	_, ok := callsite.Resolve("example.com/nowhere.(*Thing)")
	assert.False(t, ok)

	_, ok = callsite.Resolve("")
	assert.False(t, ok)
}
