package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlutsenko/chirp/internal/apperr"
	"github.com/mlutsenko/chirp/internal/service"
	"github.com/mlutsenko/chirp/internal/utils"
	"github.com/mlutsenko/chirp/internal/validation"
	"github.com/mlutsenko/chirp/models"
)

// tweetValidators is the declarative rule set applied to POST /tweets and
// PUT /tweets/{id}. The rules short-circuit within the field: an absent
// message never also reports the length failure.
var tweetValidators = []validation.Field{
	{Name: "message", Rules: []validation.Rule{
		validation.Required("Please provide a value for message."),
		validation.MaxLength(280, "Message cannot be over 280 characters."),
	}},
}

// tweetNotFound builds the 404 failure for a missing tweet, echoing the
// requested identifier in the message.
func tweetNotFound(rawID string) *apperr.Error {
	return apperr.NotFound("Tweet not found", fmt.Sprintf("%s could not be found", rawID))
}

// tweetID extracts and parses the {tweetID} route parameter. The route
// pattern admits digits only, so a parse failure means the value does not
// fit int64; such an identifier cannot exist and is reported as not found.
func tweetID(r *http.Request) (int64, *apperr.Error) {
	rawID := chi.URLParam(r, "tweetID")

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, tweetNotFound(rawID)
	}

	return id, nil
}

// listTweets handles GET /tweets.
func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	tweets, err := h.services.TweetService.GetAllTweets(ctx)
	if err != nil {
		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetsResponse{Tweets: tweets}, http.StatusOK)

	return nil
}

// createTweet handles POST /tweets. When the request carried a valid bearer
// token the identity stage has put the author's ID in the context and the
// tweet records it; otherwise the tweet is stored without an author.
func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	body := payloadFromContext(ctx)
	message, _ := body.lookup("message")

	userID, _ := utils.GetUserIDFromContext(ctx)

	tweet, err := h.services.TweetService.CreateTweet(ctx, userID, message)
	if err != nil {
		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetResponse{Tweet: tweet}, http.StatusOK)

	return nil
}

// getTweet handles GET /tweets/{tweetID}.
func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	id, appErr := tweetID(r)
	if appErr != nil {
		return appErr
	}

	tweet, err := h.services.TweetService.GetTweet(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			return tweetNotFound(chi.URLParam(r, "tweetID"))
		}

		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetResponse{Tweet: tweet}, http.StatusOK)

	return nil
}

// updateTweet handles PUT /tweets/{tweetID}.
func (h *Handler) updateTweet(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	id, appErr := tweetID(r)
	if appErr != nil {
		return appErr
	}

	body := payloadFromContext(ctx)
	message, _ := body.lookup("message")

	tweet, err := h.services.TweetService.UpdateTweet(ctx, id, message)
	if err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			return tweetNotFound(chi.URLParam(r, "tweetID"))
		}

		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetResponse{Tweet: tweet}, http.StatusOK)

	return nil
}

// deleteTweet handles DELETE /tweets/{tweetID}. The deleted tweet is echoed
// back in the success envelope.
func (h *Handler) deleteTweet(w http.ResponseWriter, r *http.Request) *apperr.Error {
	ctx := r.Context()

	id, appErr := tweetID(r)
	if appErr != nil {
		return appErr
	}

	tweet, err := h.services.TweetService.GetTweet(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			return tweetNotFound(chi.URLParam(r, "tweetID"))
		}

		return apperr.Unexpected(err)
	}

	if err := h.services.TweetService.DeleteTweet(ctx, id); err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			return tweetNotFound(chi.URLParam(r, "tweetID"))
		}

		return apperr.Unexpected(err)
	}

	h.respond(w, r, models.TweetResponse{Tweet: tweet}, http.StatusOK)

	return nil
}
