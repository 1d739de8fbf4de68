// Package logger wraps zerolog with the handful of helpers the identity
// service needs: a role-tagged root logger, a no-op logger for tests, and
// extraction of the request-scoped logger from a context or request.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger while this package stays free to add helpers of its own.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide root logger. Every entry carries the
// given role label, a timestamp, and the fully-qualified name of the calling
// function under "func". Output is JSON on stdout at debug level and up.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	root := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{root}
}

// Nop returns a logger that discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger derives a logger that starts with the receiver's fields
// and can be enriched further without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger previously attached to the request's
// context, typically by the trace-ID middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger carried by ctx. When none was attached,
// zerolog falls back to its global logger, so the result is always usable.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
