package adapter

import (
	"context"

	"github.com/mlutsenko/chirp/models"
)

// APIClient is the client-side view of the chirp REST API. Implementations
// hold the bearer token obtained from Register or Login and attach it to
// subsequent requests.
type APIClient interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, username, email, password string) (models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	ListTweets(ctx context.Context) ([]models.Tweet, error)
	ListUserTweets(ctx context.Context, userID int64) ([]models.Tweet, error)
	GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error)
	CreateTweet(ctx context.Context, message string) (models.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID int64) (models.Tweet, error)
}
