package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/emarchenko/go-identity/internal/logger"
)

// validate returns a middleware that checks the request body against the
// shape produced by newShape before the terminal handler runs.
//
// newShape must return a pointer to a fresh instance of the expected body
// type (e.g. *models.RegisterRequest); a new instance is created per request
// so concurrent requests never share state. The body is decoded into it and
// handed to the request validator, which reports every missing field at
// once.
//
// On success the consumed body is restored so the handler can decode it
// again unchanged. On failure the chain halts with HTTP 422 through the
// shared error pipeline; the terminal handler and everything behind it never
// execute. Validation here is structural only (field presence and JSON
// well-formedness); business rules stay in the service layer.
func (h *Handler) validate(newShape func() any) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Msg("error reading request body")
				h.writeError(w, r, NewHTTPError(http.StatusUnprocessableEntity, msgInvalidJSON))
				return
			}
			_ = r.Body.Close()

			shape := newShape()
			if err := json.Unmarshal(body, shape); err != nil {
				log.Warn().Err(err).Msg("invalid JSON was passed")
				h.writeError(w, r, NewHTTPError(http.StatusUnprocessableEntity, msgInvalidJSON))
				return
			}

			if err := h.validator.Validate(r.Context(), shape); err != nil {
				log.Warn().Err(err).Msg("request body failed validation")
				h.writeError(w, r, NewHTTPError(http.StatusUnprocessableEntity, err.Error()))
				return
			}

			// Hand the handler an untouched body.
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

// msgInvalidJSON is the message for bodies that cannot be decoded at all,
// as opposed to decodable bodies with missing fields (whose message lists
// the fields).
const msgInvalidJSON = "invalid JSON was passed"
