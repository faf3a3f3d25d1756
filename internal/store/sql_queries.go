package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`
)

// tweetColumns is the canonical column list scanned into models.Tweet.
// Tweet queries are built dynamically with squirrel in repository_tweet.go.
var tweetColumns = []string{"tweet_id", "user_id", "message", "created_at", "updated_at"}
