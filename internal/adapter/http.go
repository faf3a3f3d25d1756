// Package adapter implements the client side of the chirp REST API on top
// of resty. It is consumed by the bundled CLI and usable as a standalone
// API client.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlutsenko/chirp/models"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs a REST implementation of [APIClient]. It
// normalises the base URL (a bare host:port gets an http scheme) and applies
// the request timeout. Returns an error when the address cannot be parsed.
func NewHTTPAPIClient(cfg ClientConfig) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the new account to POST /users. On success the issued token
// is stored via SetToken and the full auth response is returned.
func (h *httpAPIClient) Register(ctx context.Context, username, email, password string) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		}).
		SetResult(&result).
		Post("/users")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Login POSTs the credentials to POST /users/token. On success the issued
// token is stored via SetToken and the full auth response is returned.
func (h *httpAPIClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":    email,
			"password": password,
		}).
		SetResult(&result).
		Post("/users/token")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// ListTweets GETs /tweets and returns the unwrapped collection.
func (h *httpAPIClient) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	resp, err := h.authedRequest(ctx).Get("/tweets")
	if err != nil {
		return nil, fmt.Errorf("list tweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.TweetsResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode tweets response: %w", err)
	}

	return envelope.Tweets, nil
}

// ListUserTweets GETs /users/{id}/tweets. Requires a bearer token.
func (h *httpAPIClient) ListUserTweets(ctx context.Context, userID int64) ([]models.Tweet, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/users/%d/tweets", userID))
	if err != nil {
		return nil, fmt.Errorf("list user tweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.TweetsResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode tweets response: %w", err)
	}

	return envelope.Tweets, nil
}

// GetTweet GETs /tweets/{id} and returns the unwrapped tweet.
func (h *httpAPIClient) GetTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/tweets/%d", tweetID))
	if err != nil {
		return models.Tweet{}, fmt.Errorf("get tweet request: %w", err)
	}

	return unwrapTweet(resp)
}

// CreateTweet POSTs the message to /tweets. A held bearer token is attached
// so the tweet records its author; without one it is posted anonymously.
func (h *httpAPIClient) CreateTweet(ctx context.Context, message string) (models.Tweet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"message": message}).
		Post("/tweets")
	if err != nil {
		return models.Tweet{}, fmt.Errorf("create tweet request: %w", err)
	}

	return unwrapTweet(resp)
}

// UpdateTweet PUTs the replacement message to /tweets/{id}.
func (h *httpAPIClient) UpdateTweet(ctx context.Context, tweetID int64, message string) (models.Tweet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"message": message}).
		Put(fmt.Sprintf("/tweets/%d", tweetID))
	if err != nil {
		return models.Tweet{}, fmt.Errorf("update tweet request: %w", err)
	}

	return unwrapTweet(resp)
}

// DeleteTweet sends DELETE /tweets/{id} and returns the deleted tweet the
// server echoes back.
func (h *httpAPIClient) DeleteTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/tweets/%d", tweetID))
	if err != nil {
		return models.Tweet{}, fmt.Errorf("delete tweet request: %w", err)
	}

	return unwrapTweet(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func unwrapTweet(resp *resty.Response) (models.Tweet, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}

	var envelope models.TweetResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Tweet{}, fmt.Errorf("decode tweet response: %w", err)
	}

	return envelope.Tweet, nil
}
