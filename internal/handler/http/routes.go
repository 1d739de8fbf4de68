package http

import (
	"net/http"

	"github.com/emarchenko/go-identity/models"
	"github.com/go-chi/chi/v5"
)

// route is one declared API endpoint: an HTTP method and path, the ordered
// middleware chain in front of the terminal handler, and the handler itself.
// Definitions are built once in [Handler.routes] and are immutable after
// registration.
//
// Contract on every middleware in the chain: it must either pass control to
// its continuation or halt the chain by rendering an error through the
// pipeline. A middleware that does neither leaves the request hanging; the
// binder cannot detect this.
type route struct {
	method      string
	path        string
	middlewares []func(http.Handler) http.Handler
	handler     handlerFunc
}

// routes declares the full API surface. Middleware order within a route is
// execution order.
func (h *Handler) routes() []route {
	return []route{
		{
			method: http.MethodPost,
			path:   "/users/register",
			middlewares: []func(http.Handler) http.Handler{
				h.validate(func() any { return &models.RegisterRequest{} }),
			},
			handler: h.register,
		},
		{
			method: http.MethodPost,
			path:   "/users/login",
			middlewares: []func(http.Handler) http.Handler{
				h.validate(func() any { return &models.Credentials{} }),
			},
			handler: h.login,
		},
		{
			method: http.MethodGet,
			path:   "/users/info",
			middlewares: []func(http.Handler) http.Handler{
				h.auth,
			},
			handler: h.info,
		},
	}
}

// Init builds the router: process-wide middleware first (panic recovery,
// trace IDs, access logging), then every declared route with its own chain,
// in declared order, each terminated by the error pipeline's wrap adapter.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.recovery)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	h.bindRoutes(router, h.routes())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// bindRoutes registers each definition with the router such that, on a
// matching method and path, the middleware chain runs in declared order
// followed by the terminal handler. The binder holds no state of its own; it
// is pure composition glue between the definitions and chi's dispatch.
func (h *Handler) bindRoutes(router chi.Router, routes []route) {
	for _, rt := range routes {
		router.With(rt.middlewares...).Method(rt.method, rt.path, h.wrap(rt.handler))
	}
}
