package models

// UserRef is the minimal public projection of a user returned by the
// registration and login endpoints.
type UserRef struct {
	ID int64 `json:"id"`
}

// AuthResponse is the success body of POST /users and POST /users/token.
// Token carries the compact JWS credential the client presents on
// subsequent requests.
type AuthResponse struct {
	User  UserRef `json:"user"`
	Token string  `json:"token"`
}

// TweetResponse wraps a single tweet in the `{tweet: ...}` envelope.
type TweetResponse struct {
	Tweet Tweet `json:"tweet"`
}

// TweetsResponse wraps a tweet collection in the `{tweets: [...]}` envelope.
type TweetsResponse struct {
	Tweets []Tweet `json:"tweets"`
}

// ErrorResponse is the uniform failure body. Exactly one is sent per failed
// request; Errors preserves the order in which the failures were detected.
type ErrorResponse struct {
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
