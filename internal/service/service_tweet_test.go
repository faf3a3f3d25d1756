package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/store"
	"github.com/mlutsenko/chirp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.TweetRepository
// ─────────────────────────────────────────────

type mockTweetRepository struct {
	createFn       func(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	findAllFn      func(ctx context.Context) ([]models.Tweet, error)
	findByIDFn     func(ctx context.Context, tweetID int64) (models.Tweet, error)
	findByUserIDFn func(ctx context.Context, userID int64) ([]models.Tweet, error)
	updateFn       func(ctx context.Context, tweetID int64, message string) (models.Tweet, error)
	deleteFn       func(ctx context.Context, tweetID int64) error
}

func (m *mockTweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	return tweet, nil
}

func (m *mockTweetRepository) FindAllTweets(ctx context.Context) ([]models.Tweet, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTweetRepository) FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, tweetID)
	}
	return models.Tweet{}, nil
}

func (m *mockTweetRepository) FindTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTweetRepository) UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweetID, message)
	}
	return models.Tweet{}, nil
}

func (m *mockTweetRepository) DeleteTweet(ctx context.Context, tweetID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tweetID)
	}
	return nil
}

func newTestTweetService(repo store.TweetRepository) TweetService {
	return NewTweetService(repo, logger.NewLogger("test"))
}

func TestCreateTweetService_Success(t *testing.T) {
	repo := &mockTweetRepository{
		createFn: func(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
			tweet.TweetID = 10
			tweet.CreatedAt = time.Now()
			tweet.UpdatedAt = tweet.CreatedAt
			return tweet, nil
		},
	}
	svc := newTestTweetService(repo)

	created, err := svc.CreateTweet(context.Background(), 1, "hello world")
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.TweetID)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "hello world", created.Message)
}

func TestCreateTweetService_EmptyMessage(t *testing.T) {
	svc := newTestTweetService(&mockTweetRepository{})

	_, err := svc.CreateTweet(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetAllTweets_Success(t *testing.T) {
	repo := &mockTweetRepository{
		findAllFn: func(ctx context.Context) ([]models.Tweet, error) {
			return []models.Tweet{{TweetID: 2}, {TweetID: 1}}, nil
		},
	}
	svc := newTestTweetService(repo)

	tweets, err := svc.GetAllTweets(context.Background())
	require.NoError(t, err)
	assert.Len(t, tweets, 2)
}

func TestGetTweet_NotFound(t *testing.T) {
	repo := &mockTweetRepository{
		findByIDFn: func(ctx context.Context, tweetID int64) (models.Tweet, error) {
			return models.Tweet{}, store.ErrTweetNotFound
		},
	}
	svc := newTestTweetService(repo)

	_, err := svc.GetTweet(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestGetTweet_RepositoryError(t *testing.T) {
	repo := &mockTweetRepository{
		findByIDFn: func(ctx context.Context, tweetID int64) (models.Tweet, error) {
			return models.Tweet{}, errors.New("db down")
		},
	}
	svc := newTestTweetService(repo)

	_, err := svc.GetTweet(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTweetNotFound)
}

func TestGetTweetsByUser_PassesUserID(t *testing.T) {
	var gotUserID int64
	repo := &mockTweetRepository{
		findByUserIDFn: func(ctx context.Context, userID int64) ([]models.Tweet, error) {
			gotUserID = userID
			return []models.Tweet{}, nil
		},
	}
	svc := newTestTweetService(repo)

	tweets, err := svc.GetTweetsByUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotUserID)
	assert.NotNil(t, tweets)
}

func TestUpdateTweetService_NotFound(t *testing.T) {
	repo := &mockTweetRepository{
		updateFn: func(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
			return models.Tweet{}, store.ErrTweetNotFound
		},
	}
	svc := newTestTweetService(repo)

	_, err := svc.UpdateTweet(context.Background(), 999999, "edited")
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestUpdateTweetService_EmptyMessage(t *testing.T) {
	svc := newTestTweetService(&mockTweetRepository{})

	_, err := svc.UpdateTweet(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteTweetService_Success(t *testing.T) {
	called := false
	repo := &mockTweetRepository{
		deleteFn: func(ctx context.Context, tweetID int64) error {
			called = true
			return nil
		},
	}
	svc := newTestTweetService(repo)

	require.NoError(t, svc.DeleteTweet(context.Background(), 42))
	assert.True(t, called)
}

func TestDeleteTweetService_NotFound(t *testing.T) {
	repo := &mockTweetRepository{
		deleteFn: func(ctx context.Context, tweetID int64) error {
			return store.ErrTweetNotFound
		},
	}
	svc := newTestTweetService(repo)

	err := svc.DeleteTweet(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}
