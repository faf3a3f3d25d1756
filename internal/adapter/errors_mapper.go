package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mlutsenko/chirp/models"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error
// carrying the server's failure envelope detail when it can be decoded.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail extracts the server's failure messages from the uniform
// `{title, message, errors}` envelope, falling back to the raw body and then
// to the generic status text.
func errorDetail(resp *resty.Response) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && len(envelope.Errors) > 0 {
		return strings.Join(envelope.Errors, "; ")
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
