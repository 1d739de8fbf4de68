package http

import (
	"errors"
	"net/http"

	"github.com/emarchenko/go-identity/internal/app"
	"github.com/emarchenko/go-identity/internal/service"
	"github.com/emarchenko/go-identity/internal/store"
)

// errorStatusMap translates the sentinel errors of the inner layers into the
// HTTPError the pipeline writes. Anything absent from the map coerces to the
// generic 500; internal detail never reaches the client.
var errorStatusMap = map[error]*HTTPError{
	service.ErrInvalidDataProvided:     {StatusCode: http.StatusUnprocessableEntity, Message: app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:      {StatusCode: http.StatusUnauthorized, Message: app.MsgAuthorizationError},
	service.ErrTokenIsExpiredOrInvalid: {StatusCode: http.StatusUnauthorized, Message: app.MsgAuthorizationError},

	store.ErrUserAlreadyExists: {StatusCode: http.StatusUnprocessableEntity, Message: app.MsgUserAlreadyExists},

	ErrEmptyAuthorizationHeader:   {StatusCode: http.StatusUnauthorized, Message: app.MsgAuthorizationError},
	ErrInvalidAuthorizationHeader: {StatusCode: http.StatusUnauthorized, Message: app.MsgAuthorizationError},
	ErrEmptyToken:                 {StatusCode: http.StatusUnauthorized, Message: app.MsgAuthorizationError},
}

// httpErrorFrom normalises any error raised in the pipeline into an
// *HTTPError. An error that already is one passes through unchanged; known
// sentinels map through [errorStatusMap]; everything else becomes the
// generic internal error.
func httpErrorFrom(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}

	return &HTTPError{StatusCode: http.StatusInternalServerError, Message: app.MsgInternalError}
}
