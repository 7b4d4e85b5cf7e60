package xfacade

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is a facade severity. The zero value is not a valid level.
type Level uint8

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// LevelCode is the numeric level understood by location-aware backends.
type LevelCode int

const (
	CodeTrace LevelCode = 0
	CodeDebug LevelCode = 10
	CodeInfo  LevelCode = 20
	CodeWarn  LevelCode = 30
	CodeError LevelCode = 40
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelError
}

func (l Level) String() string {
	if !l.Valid() {
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Code maps l to its backend level code. Invalid levels map to -1.
func (l Level) Code() LevelCode {
	switch l {
	case LevelTrace:
		return CodeTrace
	case LevelDebug:
		return CodeDebug
	case LevelInfo:
		return CodeInfo
	case LevelWarn:
		return CodeWarn
	case LevelError:
		return CodeError
	default:
		return -1
	}
}

// Level maps a backend code back to the facade level, or 0 when c is unknown.
func (c LevelCode) Level() Level {
	switch c {
	case CodeTrace:
		return LevelTrace
	case CodeDebug:
		return LevelDebug
	case CodeInfo:
		return LevelInfo
	case CodeWarn:
		return LevelWarn
	case CodeError:
		return LevelError
	default:
		return 0
	}
}

// ParseLevel reads a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "parse %q", s)
	}
}
