package service

import (
	"context"

	"github.com/mlutsenko/chirp/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type TweetService interface {
	CreateTweet(ctx context.Context, userID int64, message string) (models.Tweet, error)
	GetAllTweets(ctx context.Context) ([]models.Tweet, error)
	GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error)
	GetTweetsByUser(ctx context.Context, userID int64) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID int64) error
}
