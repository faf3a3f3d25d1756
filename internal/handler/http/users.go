package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/service"
	"github.com/mlutsenko/chirp/internal/validation"
	"github.com/mlutsenko/chirp/models"
)

// registerValidators is the declarative rule set for POST /users. The email
// rule alone covers both absence and malformed input: an empty value fails
// the address parse just like a garbled one.
var registerValidators = []validation.Field{
	{Name: "username", Rules: []validation.Rule{
		validation.Required("Please provide a username"),
	}},
	{Name: "email", Rules: []validation.Rule{
		validation.Email("Please provide a valid email."),
	}},
	{Name: "password", Rules: []validation.Rule{
		validation.Required("Please provide a password."),
	}},
}

// loginValidators is the declarative rule set for POST /users/token.
var loginValidators = []validation.Field{
	{Name: "email", Rules: []validation.Rule{
		validation.Email("Please provide a valid email."),
	}},
	{Name: "password", Rules: []validation.Rule{
		validation.Required("Please provide a password."),
	}},
}

// register handles POST /users: it creates the account, issues a token for
// it, and responds 201 with the `{user: {id}, token}` envelope.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body := payloadFromContext(ctx)
	username, _ := body.lookup("username")
	email, _ := body.lookup("email")
	password, _ := body.lookup("password")

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, username, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyTaken) {
			return apperr.BadRequest("User with that email already exists.")
		}

		return apperr.Unexpected(err)
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		return apperr.Unexpected(err)
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	h.respond(w, r, models.AuthResponse{
		User:  models.UserRef{ID: registeredUser.UserID},
		Token: token.SignedString,
	}, http.StatusCreated)

	return nil
}

// login handles POST /users/token: it verifies the credentials and responds
// with a fresh token. Unknown email and wrong password produce the identical
// 401 body so the endpoint cannot be used to probe which accounts exist.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body := payloadFromContext(ctx)
	email, _ := body.lookup("email")
	password, _ := body.lookup("password")

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			return apperr.Unauthenticated(err, "The provided credentials were invalid.")
		}

		return apperr.Unexpected(err)
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		return apperr.Unexpected(err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user logged in")

	h.respond(w, r, models.AuthResponse{
		User:  models.UserRef{ID: foundUser.UserID},
		Token: token.SignedString,
	}, http.StatusOK)

	return nil
}

// listUserTweets handles GET /users/{userID}/tweets. The route sits behind
// the auth stage; an unknown user simply yields an empty list.
func (h *Handler) listUserTweets(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return apperr.NotFound("Not Found", "The requested resource could not be found.")
	}

	tweets, err := h.services.TweetService.GetTweetsByUser(ctx, userID)
	if err != nil {
		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetsResponse{Tweets: tweets}, http.StatusOK)

	return nil
}
