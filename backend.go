package xfacade

// Backend is the logging library a facade Logger forwards to (Strategy).
// Warn and Error take the attached error, nil when there is none.
// Implementations MUST be safe for concurrent use.
type Backend interface {
	Name() string

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string, err error)
	Error(msg string, err error)
}

// LocationAwareBackend is an optional Backend capability: it accepts the
// identity of the reporting type so the logged caller is the first frame
// outside of it, not the adapter.
type LocationAwareBackend interface {
	Backend
	LogLocation(marker Marker, boundary string, code LevelCode, msg string, args []any, err error)
}

// Marker tags a log entry. Backends may render or ignore it.
type Marker interface {
	Name() string
}
