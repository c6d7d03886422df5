package domain

import "time"

// Settings holds the effective application settings after layering
// defaults, the config file and the environment.
type Settings struct {
	// GitHub configures the search provider.
	GitHub GitHubSettings

	// Search holds defaults for research queries.
	Search SearchSettings

	// Verbose enables pipeline debug logging.
	Verbose bool
}

// GitHubSettings configures the GitHub search provider.
type GitHubSettings struct {
	// Token is a personal access token. Empty means unauthenticated.
	Token string

	// BaseURL overrides the API endpoint (GitHub Enterprise).
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// SearchSettings holds defaults applied when the caller leaves a field empty.
type SearchSettings struct {
	MaxResults int
	SortBy     string
	Type       string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		GitHub: GitHubSettings{
			Timeout: 30 * time.Second,
		},
		Search: SearchSettings{
			MaxResults: DefaultMaxResults,
			SortBy:     string(SortRelevance),
			Type:       string(SourceTypeAll),
		},
	}
}

// AuthMethod reports how the provider will authenticate.
func (s Settings) AuthMethod() AuthMethod {
	if s.GitHub.Token == "" {
		return AuthMethodNone
	}
	return AuthMethodPAT
}
