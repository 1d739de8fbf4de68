package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod replaces chi's default MethodNotAllowed handler. A request
// that hits a known path with an unregistered method gets 404 instead of
// 405, so probing with the wrong verb reveals nothing about which paths
// exist.
//
// The requested path is matched against the router's registered patterns by
// exact comparison; when the pattern does list the requested method the
// request is handed back to the router's normal dispatch.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, registered := range router.Routes() {
			if registered.Pattern == r.URL.Path {
				matched = registered
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
