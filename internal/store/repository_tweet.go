package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/models"
)

// tweetRepository is the SQL-backed implementation of [TweetRepository].
//
// Queries are composed with squirrel so listing and filtering share one
// builder; $N placeholders are understood by both supported drivers.
type tweetRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewTweetRepository constructs a [TweetRepository] backed by the provided
// database connection and logger.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateTweet persists a new tweet and returns it with server-assigned
// fields (TweetID, CreatedAt, UpdatedAt) populated.
func (r *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	var author any
	if tweet.UserID != 0 {
		author = tweet.UserID
	}

	query, args, err := r.builder.
		Insert(tweet.TableName()).
		Columns("user_id", "message").
		Values(author, tweet.Message).
		Suffix("RETURNING tweet_id, user_id, message, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error: building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.scanTweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error: scanning error")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAllTweets returns every stored tweet, newest first.
func (r *tweetRepository) FindAllTweets(ctx context.Context) ([]models.Tweet, error) {
	return r.findTweets(ctx, nil)
}

// FindTweetsByUserID returns the tweets authored by the given user, newest
// first. An unknown user yields an empty slice, not an error.
func (r *tweetRepository) FindTweetsByUserID(ctx context.Context, userID int64) ([]models.Tweet, error) {
	return r.findTweets(ctx, sq.Eq{"user_id": userID})
}

// FindTweetByID retrieves the tweet with the given primary key, or
// [ErrTweetNotFound] when no such tweet exists.
func (r *tweetRepository) FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(tweetColumns...).
		From(models.Tweet{}.TableName()).
		Where(sq.Eq{"tweet_id": tweetID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error: building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.scanTweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrTweetNotFound
		}

		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error: scanning error")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateTweet replaces the message of an existing tweet and refreshes its
// updated_at timestamp. Returns [ErrTweetNotFound] when no such tweet exists.
func (r *tweetRepository) UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.Tweet{}.TableName()).
		Set("message", message).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"tweet_id": tweetID}).
		Suffix("RETURNING tweet_id, user_id, message, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error: building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.scanTweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrTweetNotFound
		}

		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error: scanning error")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTweet removes the tweet with the given primary key. Returns
// [ErrTweetNotFound] when no rows were affected.
func (r *tweetRepository) DeleteTweet(ctx context.Context, tweetID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Tweet{}.TableName()).
		Where(sq.Eq{"tweet_id": tweetID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error: executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTweetNotFound
	}

	return nil
}

func (r *tweetRepository) findTweets(ctx context.Context, where sq.Eq) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.
		Select(tweetColumns...).
		From(models.Tweet{}.TableName()).
		OrderBy("created_at DESC", "tweet_id DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.findTweets").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.findTweets").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tweets := make([]models.Tweet, 0)
	for rows.Next() {
		var (
			tweet  models.Tweet
			author sql.NullInt64
		)
		if err := rows.Scan(&tweet.TweetID, &author, &tweet.Message, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*tweetRepository.findTweets").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tweet.UserID = author.Int64

		tweets = append(tweets, tweet)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tweetRepository.findTweets").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tweets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *tweetRepository) scanTweet(row rowScanner) (models.Tweet, error) {
	var (
		tweet  models.Tweet
		author sql.NullInt64
	)
	if err := row.Scan(&tweet.TweetID, &author, &tweet.Message, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
		return models.Tweet{}, err
	}
	tweet.UserID = author.Int64

	return tweet, nil
}
