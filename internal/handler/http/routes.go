package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/validation"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	// unmatched routes still get the uniform failure envelope
	router.NotFound(h.pipe(h.notFound))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.validated(registerValidators)).Post("/users", h.pipe(h.register))
		r.With(h.validated(loginValidators)).Post("/users/token", h.pipe(h.login))

		r.Get("/tweets", h.pipe(h.listTweets))
		r.Get("/tweets/{tweetID:[0-9]+}", h.pipe(h.getTweet))
		r.With(h.identity, h.validated(tweetValidators)).Post("/tweets", h.pipe(h.createTweet))
		r.With(h.validated(tweetValidators)).Put("/tweets/{tweetID:[0-9]+}", h.pipe(h.updateTweet))
		r.Delete("/tweets/{tweetID:[0-9]+}", h.pipe(h.deleteTweet))
	})

	// routes behind the auth guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/{userID:[0-9]+}/tweets", h.pipe(h.listUserTweets))
	})

	return router
}

// validated wraps the payload-validation stage for use with chi's With.
func (h *Handler) validated(fields []validation.Field) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return h.validate(fields, next)
	}
}

func (h *Handler) notFound(http.ResponseWriter, *http.Request) *apperr.Error {
	return apperr.NotFound("Not Found", "The requested resource could not be found.")
}
