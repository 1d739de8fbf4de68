package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emarchenko/go-identity/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx API response into a wrapped sentinel
// error carrying the server's message. A 2xx response maps to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := resp.Status()
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		message = body.Message
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case resp.StatusCode() == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, message)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, message)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), message)
	}
}
