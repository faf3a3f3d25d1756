package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/models"
)

func newTestTweetRepo(t *testing.T) (*tweetRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &tweetRepository{
		db:      &DB{DB: db, dialect: "pgx", logger: l},
		logger:  l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func tweetRows(tweets ...models.Tweet) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"tweet_id", "user_id", "message", "created_at", "updated_at"})
	for _, tw := range tweets {
		var author any
		if tw.UserID != 0 {
			author = tw.UserID
		}
		rows.AddRow(tw.TweetID, author, tw.Message, tw.CreatedAt, tw.UpdatedAt)
	}
	return rows
}

func TestCreateTweet_Success(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO tweets").
		WithArgs(int64(1), "hello world").
		WillReturnRows(tweetRows(models.Tweet{
			TweetID:   10,
			UserID:    1,
			Message:   "hello world",
			CreatedAt: now,
			UpdatedAt: now,
		}))

	created, err := repo.CreateTweet(ctx, models.Tweet{UserID: 1, Message: "hello world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TweetID != 10 {
		t.Errorf("expected TweetID=10, got %d", created.TweetID)
	}
	if created.Message != "hello world" {
		t.Errorf("expected message preserved, got %q", created.Message)
	}
}

func TestCreateTweet_AnonymousAuthor(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// UserID 0 means no authenticated author: NULL goes to the DB.
	mock.ExpectQuery("INSERT INTO tweets").
		WithArgs(nil, "drive-by").
		WillReturnRows(tweetRows(models.Tweet{
			TweetID:   11,
			Message:   "drive-by",
			CreatedAt: now,
			UpdatedAt: now,
		}))

	created, err := repo.CreateTweet(ctx, models.Tweet{Message: "drive-by"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 0 {
		t.Errorf("expected no author, got UserID=%d", created.UserID)
	}
}

func TestFindAllTweets_Success(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT tweet_id").
		WillReturnRows(tweetRows(
			models.Tweet{TweetID: 2, UserID: 1, Message: "second", CreatedAt: now, UpdatedAt: now},
			models.Tweet{TweetID: 1, UserID: 1, Message: "first", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		))

	tweets, err := repo.FindAllTweets(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].TweetID != 2 {
		t.Errorf("expected newest tweet first, got TweetID=%d", tweets[0].TweetID)
	}
}

func TestFindAllTweets_Empty(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT tweet_id").
		WillReturnRows(tweetRows())

	tweets, err := repo.FindAllTweets(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tweets == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tweets) != 0 {
		t.Fatalf("expected no tweets, got %d", len(tweets))
	}
}

func TestFindTweetsByUserID_Filters(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT tweet_id").
		WithArgs(int64(5)).
		WillReturnRows(tweetRows(
			models.Tweet{TweetID: 3, UserID: 5, Message: "mine", CreatedAt: now, UpdatedAt: now},
		))

	tweets, err := repo.FindTweetsByUserID(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 1 || tweets[0].UserID != 5 {
		t.Fatalf("expected one tweet by user 5, got %+v", tweets)
	}
}

func TestFindTweetByID_Success(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT tweet_id").
		WithArgs(int64(42)).
		WillReturnRows(tweetRows(models.Tweet{
			TweetID: 42, UserID: 1, Message: "found", CreatedAt: now, UpdatedAt: now,
		}))

	found, err := repo.FindTweetByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.TweetID != 42 {
		t.Errorf("expected TweetID=42, got %d", found.TweetID)
	}
}

func TestFindTweetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT tweet_id").
		WithArgs(int64(999999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindTweetByID(ctx, 999999)
	if !errors.Is(err, ErrTweetNotFound) {
		t.Fatalf("expected ErrTweetNotFound, got %v", err)
	}
}

func TestUpdateTweet_Success(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("UPDATE tweets").
		WithArgs("edited", int64(42)).
		WillReturnRows(tweetRows(models.Tweet{
			TweetID: 42, UserID: 1, Message: "edited", CreatedAt: now.Add(-time.Hour), UpdatedAt: now,
		}))

	updated, err := repo.UpdateTweet(ctx, 42, "edited")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Message != "edited" {
		t.Errorf("expected edited message, got %q", updated.Message)
	}
}

func TestUpdateTweet_NotFound(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE tweets").
		WithArgs("edited", int64(999999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateTweet(ctx, 999999, "edited")
	if !errors.Is(err, ErrTweetNotFound) {
		t.Fatalf("expected ErrTweetNotFound, got %v", err)
	}
}

func TestDeleteTweet_Success(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tweets").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTweet(ctx, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTweet_NotFound(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tweets").
		WithArgs(int64(999999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTweet(ctx, 999999)
	if !errors.Is(err, ErrTweetNotFound) {
		t.Fatalf("expected ErrTweetNotFound, got %v", err)
	}
}

func TestDeleteTweet_ExecError(t *testing.T) {
	repo, mock, db := newTestTweetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tweets").
		WithArgs(int64(42)).
		WillReturnError(errors.New("db failure"))

	err := repo.DeleteTweet(ctx, 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
