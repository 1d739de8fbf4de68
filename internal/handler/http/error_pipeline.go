package http

import (
	"net/http"

	"github.com/emarchenko/go-identity/internal/app"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/utils"
	"github.com/emarchenko/go-identity/models"
)

// handlerFunc is the terminal-handler signature used by every route: the
// handler either writes exactly one successful response or returns an error.
// It never does both, and never writes an error body itself; translation
// into a client-facing response is the pipeline's job alone.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap adapts a handlerFunc to http.HandlerFunc, attaching the terminal
// error pipeline. On a returned error the pipeline normalises it via
// [httpErrorFrom] and writes the uniform {message} body, unless the handler
// already started a response, in which case writing a second one would
// violate the respond-once contract and the error is only logged.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		if err := fn(rw, r); err != nil {
			h.writeError(rw, r, err)
		}
	}
}

// writeError is the single place a pipeline failure becomes an HTTP
// response. Both the wrap adapter and the middleware that halt a chain go
// through it, so every error renders identically wherever it was raised.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	httpErr := httpErrorFrom(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Err(err).Str("context", httpErr.Context).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("context", httpErr.Context).Int("status", httpErr.StatusCode).Send()
	}

	if rw, ok := w.(*responseWriter); ok && rw.wroteHeader {
		// The handler already responded; a second write is forbidden.
		log.Error().Int("written_status", rw.status).Msg("error raised after response was written")
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: httpErr.Message}, httpErr.StatusCode)
}

// recovery converts a panic anywhere below it into the generic 500 response
// through the same pipeline, so no request can crash the listener and no
// panic detail leaks to the client.
func (h *Handler) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().Any("panic", rec).Msg("recovered from panic")
				if !rw.wroteHeader {
					h.writeError(rw, r, NewHTTPError(http.StatusInternalServerError, app.MsgInternalError))
				}
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
