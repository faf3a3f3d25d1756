package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both "no such account" and "wrong password"
	// so callers cannot distinguish the two cases.
	ErrWrongCredentials = errors.New("wrong credentials")

	ErrEmailAlreadyTaken = errors.New("email already taken")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTweetNotFound = errors.New("tweet not found")
)
