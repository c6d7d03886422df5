package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the interface.
var _ driven.SourceClient = (*Client)(nil)

// Client wraps the go-github client and implements driven.SourceClient.
// It is safe for concurrent use.
type Client struct {
	mu            sync.Mutex
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	httpClient    *http.Client
	cfg           Config
	rateLimiter   *RateLimiter
}

// NewClient creates a new GitHub API client with a token provider.
// A nil provider means unauthenticated access.
func NewClient(tokenProvider driven.TokenProvider, cfg Config) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		cfg:           cfg,
		rateLimiter:   NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a GitHub client that sends every request
// through httpClient. The client adds no credentials of its own.
func NewClientWithHTTPClient(httpClient *http.Client, cfg Config) *Client {
	return &Client{
		httpClient:  httpClient,
		cfg:         cfg,
		rateLimiter: NewRateLimiter(),
	}
}

// ensureClient initializes the go-github client if not already done.
// This is called lazily so we can get the token when needed.
func (c *Client) ensureClient(ctx context.Context) (*gh.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gh != nil {
		return c.gh, nil
	}

	httpClient, err := c.buildHTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(httpClient)
	if c.cfg.BaseURL != "" {
		base, err := parseBaseURL(c.cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
	}
	c.gh = client
	return c.gh, nil
}

func (c *Client) buildHTTPClient(ctx context.Context) (*http.Client, error) {
	if c.httpClient != nil {
		return c.httpClient, nil
	}

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	token := ""
	if c.tokenProvider != nil {
		var err error
		token, err = c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
	}
	if token == "" {
		logger.Debug("GitHub client: unauthenticated")
		return &http.Client{Timeout: timeout}, nil
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	// The context only carries the base transport; it must outlive the call.
	tc := oauth2.NewClient(context.WithoutCancel(ctx), ts)
	tc.Timeout = timeout
	logger.Debug("GitHub client: authenticated")
	return tc, nil
}

// Reset discards the cached go-github client so the next request picks
// up a new token or configuration.
func (c *Client) Reset(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gh = nil
	c.cfg = cfg
}

// SetTokenProvider replaces the token provider. It takes effect after the
// next Reset.
func (c *Client) SetTokenProvider(tp driven.TokenProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenProvider = tp
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// TokenProvider returns the token provider.
func (c *Client) TokenProvider() driven.TokenProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokenProvider
}

// do runs one search call with rate limiting and error mapping.
// Every failure is returned as a *domain.SourceSearchError for kind.
func (c *Client) do(
	ctx context.Context, kind domain.Kind, operation string,
	call func(*gh.Client) (*gh.Response, error),
) error {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return domain.NewSourceSearchError(kind, err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return domain.NewSourceSearchError(kind, fmt.Errorf("rate limit wait: %w", err))
	}

	resp, err := call(client)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return domain.NewSourceSearchError(kind, c.wrapError(err, operation))
	}
	return nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Now()
		if abuseErr.RetryAfter != nil {
			resetAt = resetAt.Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{
			ResetAt:   resetAt,
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
