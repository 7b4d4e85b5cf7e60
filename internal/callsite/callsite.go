// Package callsite finds the frame that called into a logging facade.
package callsite

import (
	"runtime"
	"strings"
)

const maxDepth = 64

// Site is a resolved caller.
type Site struct {
	// PC is the return address as reported by runtime.Callers, so it can be
	// handed to slog.NewRecord and runtime.CallersFrames unchanged.
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Resolve walks the calling goroutine's stack and returns the first frame
// after the run of frames belonging to boundary. A frame belongs to
// boundary when its function name is boundary followed by ".".
// It reports false when no frame belongs to boundary.
func Resolve(boundary string) (Site, bool) {
	if boundary == "" {
		return Site{}, false
	}
	prefix := boundary + "."

	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:]) // skip runtime.Callers and Resolve
	inside := false
	for _, pc := range pcs[:n] {
		// One pc expands to several frames when calls were inlined.
		frames := runtime.CallersFrames([]uintptr{pc})
		for {
			f, more := frames.Next()
			if strings.HasPrefix(f.Function, prefix) {
				inside = true
			} else if inside {
				return Site{PC: pc, File: f.File, Line: f.Line, Function: f.Function}, true
			}
			if !more {
				break
			}
		}
	}
	return Site{}, false
}
