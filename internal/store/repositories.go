package store

import "github.com/mlutsenko/chirp/internal/logger"

// Repositories bundles all persistence interfaces consumed by the service
// layer.
type Repositories struct {
	UserRepository  UserRepository
	TweetRepository TweetRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		TweetRepository: NewTweetRepository(db, log),
	}
}
