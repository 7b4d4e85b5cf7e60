package xfacade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xfacade"
)

func TestLevel_StringAndCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level xfacade.Level
		name  string
		code  xfacade.LevelCode
	}{
		{xfacade.LevelTrace, "TRACE", 0},
		{xfacade.LevelDebug, "DEBUG", 10},
		{xfacade.LevelInfo, "INFO", 20},
		{xfacade.LevelWarn, "WARN", 30},
		{xfacade.LevelError, "ERROR", 40},
	}
	for _, tc := range cases {
		assert.True(t, tc.level.Valid())
		assert.Equal(t, tc.name, tc.level.String())
		assert.Equal(t, tc.code, tc.level.Code())
		assert.Equal(t, tc.level, tc.code.Level())
	}

	assert.False(t, xfacade.Level(0).Valid())
	assert.Equal(t, "LEVEL(9)", xfacade.Level(9).String())
	assert.Equal(t, xfacade.LevelCode(-1), xfacade.Level(9).Code())
	assert.Equal(t, xfacade.Level(0), xfacade.LevelCode(15).Level())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]xfacade.Level{
		"trace":   xfacade.LevelTrace,
		"DEBUG":   xfacade.LevelDebug,
		" Info ":  xfacade.LevelInfo,
		"warn":    xfacade.LevelWarn,
		"warning": xfacade.LevelWarn,
		"ERROR":   xfacade.LevelError,
	} {
		got, err := xfacade.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := xfacade.ParseLevel("fatal")
	assert.ErrorIs(t, err, xfacade.ErrInvalidLevel)
}
