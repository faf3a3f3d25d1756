package http

import (
	"context"
	"net/http"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/utils"
)

// auth is the authentication stage of the pipeline.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Every failure — absent header, unparseable header, malformed token, bad
// signature, expired token — produces the same 401 response. The precise
// cause is logged by the token service and never reaches the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.renderError(w, r, apperr.Unauthenticated(ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			h.renderError(w, r, apperr.Unauthenticated(ErrInvalidAuthorizationHeader))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.renderError(w, r, apperr.Unauthenticated(err))
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identity is the non-failing variant of auth. When a valid bearer token
// accompanies the request the user's ID is attached to the context; when the
// header is absent or the token does not verify the request proceeds
// anonymously. Used on tweet creation so authored tweets record their author
// without making authentication mandatory.
func (h *Handler) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			if tokenString, err := utils.ParseBearerToken(authHeader); err == nil {
				if token, err := h.services.AuthService.ParseToken(ctx, tokenString); err == nil {
					ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
