package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON renders data as a JSON response body under the given status
// code, setting the Content-Type header accordingly.
//
// Marshaling happens before anything is written, so a marshal failure
// produces a plain 500 instead of a truncated JSON body. The returned int
// is the number of body bytes written.
//
//	WriteJSON(w, models.TokenResponse{JWT: signed}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("marshaling response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
