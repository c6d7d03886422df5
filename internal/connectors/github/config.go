package github

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://ghe.example.com/api/v3/".
	// Empty means api.github.com.
	BaseURL string

	// Timeout bounds each HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// ConfigFromSettings extracts the client configuration from settings.
func ConfigFromSettings(s domain.GitHubSettings) Config {
	return Config{BaseURL: s.BaseURL, Timeout: s.Timeout}
}

// parseBaseURL validates an API root and guarantees a trailing slash,
// which go-github requires.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return u, nil
}
