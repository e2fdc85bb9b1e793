package fluentstr

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var debugLogger = newDebugLogger()

func newDebugLogger() *atomic.Pointer[zerolog.Logger] {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	var p atomic.Pointer[zerolog.Logger]
	p.Store(&l)
	return &p
}

// SetLogger replaces the logger used by Debug. The library logs nothing
// else.
func SetLogger(l zerolog.Logger) { debugLogger.Store(&l) }

// Logger returns the logger used by Debug.
func Logger() zerolog.Logger { return *debugLogger.Load() }

// Peek calls observer with the current result and returns v unchanged.
func (v Value) Peek(observer func(string)) Value {
	observer(v.current)
	return v
}

// Debug writes the original input and current result at debug level.
func (v Value) Debug() Value {
	debugLogger.Load().Debug().
		Str("input", v.original).
		Str("result", v.current).
		Msg("fluentstr value")
	return v
}
