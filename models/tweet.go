package models

import "time"

// Tweet is a single published message.
type Tweet struct {
	// TweetID is the internal unique identifier of the tweet.
	TweetID int64 `json:"id"`

	// UserID is the identifier of the author, zero when the tweet was
	// posted without an authenticated identity.
	UserID int64 `json:"user_id,omitempty"`

	// Message is the tweet body. At most 280 characters.
	Message string `json:"message"`

	// CreatedAt is the timestamp when the tweet was published.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last edit. Equals CreatedAt for
	// tweets that were never edited.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}
