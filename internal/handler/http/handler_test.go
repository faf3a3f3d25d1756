package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/internal/service"
	"github.com/mlutsenko/chirp/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, email, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, email, password string) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, username, email, password)
	}
	return models.User{UserID: 1, Username: username, Email: email}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{UserID: 1, Email: email}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock TweetService
// ─────────────────────────────────────────────

type mockTweetService struct {
	createFn    func(ctx context.Context, userID int64, message string) (models.Tweet, error)
	getAllFn    func(ctx context.Context) ([]models.Tweet, error)
	getFn       func(ctx context.Context, tweetID int64) (models.Tweet, error)
	getByUserFn func(ctx context.Context, userID int64) ([]models.Tweet, error)
	updateFn    func(ctx context.Context, tweetID int64, message string) (models.Tweet, error)
	deleteFn    func(ctx context.Context, tweetID int64) error
}

func (m *mockTweetService) CreateTweet(ctx context.Context, userID int64, message string) (models.Tweet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, message)
	}
	return models.Tweet{TweetID: 1, UserID: userID, Message: message}, nil
}

func (m *mockTweetService) GetAllTweets(ctx context.Context) ([]models.Tweet, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []models.Tweet{}, nil
}

func (m *mockTweetService) GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tweetID)
	}
	return models.Tweet{TweetID: tweetID}, nil
}

func (m *mockTweetService) GetTweetsByUser(ctx context.Context, userID int64) ([]models.Tweet, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return []models.Tweet{}, nil
}

func (m *mockTweetService) UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweetID, message)
	}
	return models.Tweet{TweetID: tweetID, Message: message}, nil
}

func (m *mockTweetService) DeleteTweet(ctx context.Context, tweetID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tweetID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router wired to the given mocks, so tests
// exercise the real pipeline: trace, logging, recover, auth/validation,
// handlers, and the terminal error renderer.
func newTestRouter(auth service.AuthService, tweets service.TweetService) http.Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if tweets == nil {
		tweets = &mockTweetService{}
	}
	h := NewHandler(&service.Services{
		AuthService:  auth,
		TweetService: tweets,
	}, logger.Nop())
	return h.Init()
}

// doRequest sends a JSON request through the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeErrorBody parses the uniform failure envelope.
func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
