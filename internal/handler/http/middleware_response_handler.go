package http

import "net/http"

// responseWriter decorates http.ResponseWriter to record what the handler
// below it wrote. The access log reads status and size afterwards, and the
// error pipeline consults wroteHeader to uphold the respond-exactly-once
// contract: once a response has started, no error body may follow it.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

// WriteHeader forwards the status code to the underlying writer exactly
// once; repeated calls are ignored, matching the http.ResponseWriter
// contract.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write accumulates the body size, implying a 200 status when the handler
// never called WriteHeader, as the standard library does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
