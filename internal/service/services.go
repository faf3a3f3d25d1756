package service

import (
	"github.com/mlutsenko/chirp/internal/config"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/store"
)

type Services struct {
	AuthService  AuthService
	TweetService TweetService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, cfg.App, logger),
		TweetService: NewTweetService(repositories.TweetRepository, logger),
	}
}
