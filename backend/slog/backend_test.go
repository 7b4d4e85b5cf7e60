package slogbackend

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock/adapter/frozen"

	"github.com/trickstertwo/xfacade"
)

type marker string

func (m marker) Name() string { return string(m) }

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), "line=%s", sc.Text())
		out = append(out, m)
	}
	return out
}

func TestBackend_AdapterReportsFacadeSource(t *testing.T) {
	ft := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	t.Cleanup(frozen.Set(frozen.Config{Time: ft}))

	var buf bytes.Buffer
	sl := NewLogger(Config{Writer: &buf, MinLevel: xfacade.LevelTrace, Source: true})
	l := xfacade.NewAdapter(New(sl, "com.app.Service"))
	require.True(t, l.LocationAware())

	_, _, line, _ := runtime.Caller(0)
	l.Info("state changed")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	m := lines[0]
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "state changed", m["msg"])
	assert.Equal(t, "com.app.Service", m[NameKey])

	ts, err := time.Parse(time.RFC3339Nano, m["time"].(string))
	require.NoError(t, err)
	assert.True(t, ts.Equal(ft), "time=%s", ts)

	src, ok := m["source"].(map[string]any)
	require.True(t, ok, "source missing: %v", m)
	assert.Equal(t, float64(line+1), src["line"])
	assert.True(t, strings.HasSuffix(src["file"].(string), "backend_test.go"), src["file"])
	assert.True(t, strings.HasSuffix(src["function"].(string), ".TestBackend_AdapterReportsFacadeSource"), src["function"])
}

func TestBackend_LevelsAndTraceName(t *testing.T) {
	var buf bytes.Buffer
	l := xfacade.NewAdapter(New(NewLogger(Config{Writer: &buf, MinLevel: xfacade.LevelTrace}), "svc"))

	assert.True(t, l.IsTraceEnabled())
	l.Trace("t")
	l.Debug("d")
	l.WarnErr("w", errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "TRACE", lines[0]["level"])
	assert.Equal(t, "DEBUG", lines[1]["level"])
	assert.Equal(t, "WARN", lines[2]["level"])
	assert.Equal(t, "boom", lines[2]["error"])
	assert.NotContains(t, lines[0], "source")
}

func TestBackend_Enablement(t *testing.T) {
	var buf bytes.Buffer
	l := xfacade.NewAdapter(New(NewLogger(Config{Writer: &buf, MinLevel: xfacade.LevelWarn}), "svc"))

	assert.False(t, l.IsTraceEnabled())
	assert.False(t, l.IsDebugEnabled())
	assert.False(t, l.IsInfoEnabled())
	assert.True(t, l.IsWarnEnabled())
	assert.True(t, l.IsErrorEnabled())

	l.Info("dropped")
	l.Error("kept")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
}

func TestBackend_PlainAndMarker(t *testing.T) {
	var buf bytes.Buffer
	b := New(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})), "")

	b.Error("plain", errors.New("boom"))
	b.LogLocation(marker("audit"), "example.com/nowhere.(*T)", xfacade.CodeDebug, "%d items", []any{4}, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[0]["error"])
	assert.NotContains(t, lines[0], NameKey)
	assert.Equal(t, "4 items", lines[1]["msg"])
	assert.Equal(t, "audit", lines[1]["marker"])
}

func TestUse_TextFormat(t *testing.T) {
	t.Cleanup(func() { xfacade.SetGlobal(nil) })

	var buf bytes.Buffer
	f := Use(Config{Writer: &buf, Format: FormatText})
	require.Same(t, f, xfacade.Global())

	xfacade.Get("svc").Info("hello")
	xfacade.Get("svc").Debug("dropped")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "logger=svc")
	assert.NotContains(t, out, "dropped")
}
