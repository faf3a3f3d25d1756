// Package apperr defines the closed set of failure kinds that can terminate a
// request. Every pipeline stage (auth guard, validation, business handlers,
// repositories via their services) reports failures as an *Error; only the
// HTTP transport layer renders one, exactly once per request.
package apperr

import "net/http"

// Kind discriminates the failure variants. The set is closed: transport code
// switches on it exhaustively and anything it does not recognise is treated
// as KindUnexpected.
type Kind int

const (
	// KindBadRequest aggregates one or more validation failures. The client
	// can recover by correcting the payload and resubmitting.
	KindBadRequest Kind = iota

	// KindUnauthenticated covers every credential failure: absent carrier,
	// malformed token, bad signature, expired token, wrong login password.
	// The sub-cause is for logs only and is never exposed to the client.
	KindUnauthenticated

	// KindNotFound reports a lookup by key that matched nothing.
	KindNotFound

	// KindUnexpected is every failure the taxonomy does not recognise.
	// Internal detail stays in Cause and is logged, never serialized.
	KindUnexpected
)

// Error is the normalized failure shape rendered to clients as
// `{title, message, errors}` with Status() as the HTTP status code.
type Error struct {
	Kind    Kind
	Title   string
	Message string

	// Errors holds the client-facing failure messages in detection order.
	Errors []string

	// Cause is the underlying error, kept for logging. Never serialized.
	Cause error
}

// Error implements the error interface. It returns the summary message so
// wrapped occurrences read naturally in logs.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Status maps the failure kind to its fixed HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest builds the aggregate validation failure. The messages keep the
// order in which the rules were declared.
func BadRequest(messages ...string) *Error {
	return &Error{
		Kind:    KindBadRequest,
		Title:   "Bad Request.",
		Message: "Bad request.",
		Errors:  messages,
	}
}

// Unauthenticated builds a credential failure carrying the given
// client-facing messages. cause records why verification failed for logging;
// the client always sees the same 401 shape regardless of cause.
func Unauthenticated(cause error, messages ...string) *Error {
	if len(messages) == 0 {
		messages = []string{"Unauthorized"}
	}
	return &Error{
		Kind:    KindUnauthenticated,
		Title:   "Unauthorized",
		Message: "Unauthorized",
		Errors:  messages,
		Cause:   cause,
	}
}

// NotFound builds a missing-resource failure with a resource-specific title,
// e.g. NotFound("Tweet not found", "42 could not be found").
func NotFound(title, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Title:   title,
		Message: message,
		Errors:  []string{message},
	}
}

// Unexpected wraps an unanticipated fault. The cause is preserved for logs;
// the client-facing fields carry no internal detail.
func Unexpected(cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Title:   "Internal Server Error",
		Message: "An unexpected error occurred.",
		Errors:  []string{"An unexpected error occurred."},
		Cause:   cause,
	}
}
