package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/utils"
	"github.com/mlutsenko/chirp/internal/validation"
	"github.com/mlutsenko/chirp/models"
)

// handlerFunc is a business handler that reports failure as a normalized
// *apperr.Error instead of writing its own error response. A nil return
// means the handler already wrote the success body.
type handlerFunc func(w http.ResponseWriter, r *http.Request) *apperr.Error

// pipe adapts a handlerFunc to http.HandlerFunc, funnelling any returned
// failure into the terminal renderer. It is the only place a failure
// response is ever produced, so exactly one is written per request.
func (h *Handler) pipe(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if appErr := fn(w, r); appErr != nil {
			h.renderError(w, r, appErr)
		}
	}
}

// renderError writes the uniform failure envelope for appErr. When the
// client has already disconnected the write is skipped entirely; the
// failure is still logged.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, appErr *apperr.Error) {
	log := logger.FromRequest(r)

	event := log.Warn()
	if appErr.Kind == apperr.KindUnexpected {
		event = log.Error()
	}
	event.
		Err(appErr.Cause).
		Int("status", appErr.Status()).
		Str("title", appErr.Title).
		Strs("errors", appErr.Errors).
		Msg("request failed")

	if r.Context().Err() != nil {
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Title:   appErr.Title,
		Message: appErr.Message,
		Errors:  appErr.Errors,
	}, appErr.Status())
}

// respond writes a success body, skipping the write when the client has
// already disconnected.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if r.Context().Err() != nil {
		return
	}

	utils.WriteJSON(w, data, statusCode)
}

// payload is the decoded JSON request body. Values are kept as decoded by
// encoding/json; lookup narrows them to strings for the validation engine.
type payload map[string]any

// lookup resolves a field for the validation engine. Absent and non-string
// values both read as empty, matching how the rules treat a missing field.
func (p payload) lookup(name string) (string, bool) {
	raw, ok := p[name]
	if !ok {
		return "", false
	}

	value, isString := raw.(string)
	if !isString {
		return "", true
	}

	return value, true
}

type payloadCtxKey struct{}

// payloadFromContext returns the body decoded by the validate middleware.
func payloadFromContext(ctx context.Context) payload {
	if p, ok := ctx.Value(payloadCtxKey{}).(payload); ok {
		return p
	}

	return payload{}
}

// validate is the payload-validation stage of the pipeline. It decodes the
// JSON body once, evaluates the endpoint's declared rule set, and either
// rejects the request with the aggregated failure list or stores the decoded
// payload in the context for the downstream handler.
func (h *Handler) validate(fields []validation.Field, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var body payload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			h.renderError(w, r, apperr.BadRequest("Invalid JSON was passed"))
			return
		}

		if messages := validation.Apply(fields, body.lookup); len(messages) > 0 {
			h.renderError(w, r, apperr.BadRequest(messages...))
			return
		}

		ctx := context.WithValue(r.Context(), payloadCtxKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
