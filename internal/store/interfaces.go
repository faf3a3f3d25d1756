package store

import (
	"context"

	"github.com/mlutsenko/chirp/models"
)

// UserRepository is the data-access collaborator for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TweetRepository is the data-access collaborator for tweets. "Record not
// found by key" is reported as ErrTweetNotFound, never swallowed.
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	FindAllTweets(ctx context.Context) ([]models.Tweet, error)
	FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error)
	FindTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID int64) error
}
