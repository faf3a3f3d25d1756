package adapter

import "errors"

// Sentinel errors mapped from the server's failure statuses. The server's
// `errors` list, when present, is carried in the wrapping message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
