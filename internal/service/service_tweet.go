package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/store"
	"github.com/mlutsenko/chirp/models"
)

// tweetService is the concrete implementation of TweetService.
// Business rules on the message itself (presence, length) are enforced at
// the transport layer; this service owns persistence semantics only.
type tweetService struct {
	tweetRepository store.TweetRepository
	logger          *logger.Logger
}

// NewTweetService constructs a TweetService backed by the given repository.
func NewTweetService(tweetRepository store.TweetRepository, logger *logger.Logger) TweetService {
	return &tweetService{
		tweetRepository: tweetRepository,
		logger:          logger,
	}
}

// CreateTweet stores a new tweet. userID may be zero for an unauthenticated
// author, in which case the tweet is persisted without one.
func (s *tweetService) CreateTweet(ctx context.Context, userID int64, message string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		log.Error().Msg("empty tweet message provided")
		return models.Tweet{}, ErrInvalidDataProvided
	}

	created, err := s.tweetRepository.CreateTweet(ctx, models.Tweet{
		UserID:  userID,
		Message: message,
	})
	if err != nil {
		log.Err(err).Msg("tweet creation ended with error")
		return models.Tweet{}, fmt.Errorf("tweet creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllTweets returns every stored tweet, newest first.
func (s *tweetService) GetAllTweets(ctx context.Context) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	tweets, err := s.tweetRepository.FindAllTweets(ctx)
	if err != nil {
		log.Err(err).Msg("tweet listing ended with error")
		return nil, fmt.Errorf("tweet listing ended with error: %w", err)
	}

	return tweets, nil
}

// GetTweet returns a single tweet by ID, or ErrTweetNotFound.
func (s *tweetService) GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	tweet, err := s.tweetRepository.FindTweetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			return models.Tweet{}, ErrTweetNotFound
		}

		log.Err(err).Int64("tweetID", tweetID).Msg("tweet search by id failed")
		return models.Tweet{}, fmt.Errorf("tweet search by id failed: %w", err)
	}

	return tweet, nil
}

// GetTweetsByUser returns the tweets authored by the given user, newest
// first. An unknown user yields an empty list.
func (s *tweetService) GetTweetsByUser(ctx context.Context, userID int64) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	tweets, err := s.tweetRepository.FindTweetsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("tweet search by user failed")
		return nil, fmt.Errorf("tweet search by user failed: %w", err)
	}

	return tweets, nil
}

// UpdateTweet replaces the message of an existing tweet, or returns
// ErrTweetNotFound.
func (s *tweetService) UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		log.Error().Int64("tweetID", tweetID).Msg("empty tweet message provided")
		return models.Tweet{}, ErrInvalidDataProvided
	}

	updated, err := s.tweetRepository.UpdateTweet(ctx, tweetID, message)
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			return models.Tweet{}, ErrTweetNotFound
		}

		log.Err(err).Int64("tweetID", tweetID).Msg("tweet update ended with error")
		return models.Tweet{}, fmt.Errorf("tweet update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTweet removes a tweet, or returns ErrTweetNotFound.
func (s *tweetService) DeleteTweet(ctx context.Context, tweetID int64) error {
	log := logger.FromContext(ctx)

	if err := s.tweetRepository.DeleteTweet(ctx, tweetID); err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			return ErrTweetNotFound
		}

		log.Err(err).Int64("tweetID", tweetID).Msg("tweet deletion ended with error")
		return fmt.Errorf("tweet deletion ended with error: %w", err)
	}

	return nil
}
