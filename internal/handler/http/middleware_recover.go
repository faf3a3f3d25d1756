package http

import (
	"fmt"
	"net/http"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/logger"
)

// withRecover converts a downstream panic into the standard unexpected-error
// response instead of letting the connection die. The panic value and stack
// location are logged; the client sees the same 500 body as any other
// unexpected failure.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().Any("panic", rec).Msg("panic recovered in handler")

				h.renderError(w, r, apperr.Unexpected(fmt.Errorf("panic: %v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
