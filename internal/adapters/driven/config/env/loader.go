// Package env layers configuration sources into domain.Settings:
// defaults < config file < environment. Command-line flags are applied by
// the CLI on top of the result.
package env

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Prefix is the environment variable prefix.
const Prefix = "SCOUT"

// Config file keys.
const (
	KeyGitHubToken      = "github.token"
	KeyGitHubBaseURL    = "github.base_url"
	KeyGitHubTimeout    = "github.timeout"
	KeySearchMaxResults = "search.max_results"
	KeySearchSortBy     = "search.sort_by"
	KeySearchType       = "search.type"
	KeyVerbose          = "verbose"
)

// KnownKeys lists every key the config file understands.
func KnownKeys() []string {
	return []string{
		KeyGitHubToken,
		KeyGitHubBaseURL,
		KeyGitHubTimeout,
		KeySearchMaxResults,
		KeySearchSortBy,
		KeySearchType,
		KeyVerbose,
	}
}

// Variables is the environment view of the settings.
//
//	SCOUT_GITHUB_TOKEN (falls back to GITHUB_TOKEN)
//	SCOUT_API_BASE_URL, SCOUT_API_TIMEOUT
//	SCOUT_MAX_RESULTS, SCOUT_SORT_BY, SCOUT_TYPE, SCOUT_VERBOSE
type Variables struct {
	GitHubToken string        `envconfig:"GITHUB_TOKEN"`
	APIBaseURL  string        `split_words:"true"`
	APITimeout  time.Duration `split_words:"true"`
	MaxResults  int           `split_words:"true"`
	SortBy      string        `split_words:"true"`
	Type        string
	Verbose     bool
}

// Load builds the effective settings. store may be nil.
func Load(store driven.ConfigStore) (domain.Settings, error) {
	s := domain.DefaultSettings()

	if store != nil {
		if err := applyStore(store, &s); err != nil {
			return domain.Settings{}, err
		}
	}

	vars := toVariables(s)
	if err := envconfig.Process(Prefix, &vars); err != nil {
		return domain.Settings{}, fmt.Errorf("env override: %w", err)
	}
	return fromVariables(vars), nil
}

func applyStore(store driven.ConfigStore, s *domain.Settings) error {
	if v := store.GetString(KeyGitHubToken); v != "" {
		s.GitHub.Token = v
	}
	if v := store.GetString(KeyGitHubBaseURL); v != "" {
		s.GitHub.BaseURL = v
	}
	if v := store.GetString(KeyGitHubTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyGitHubTimeout, err)
		}
		s.GitHub.Timeout = d
	}
	if v := store.GetInt(KeySearchMaxResults); v != 0 {
		s.Search.MaxResults = v
	}
	if v := store.GetString(KeySearchSortBy); v != "" {
		s.Search.SortBy = v
	}
	if v := store.GetString(KeySearchType); v != "" {
		s.Search.Type = v
	}
	if store.GetBool(KeyVerbose) {
		s.Verbose = true
	}
	return nil
}

func toVariables(s domain.Settings) Variables {
	return Variables{
		GitHubToken: s.GitHub.Token,
		APIBaseURL:  s.GitHub.BaseURL,
		APITimeout:  s.GitHub.Timeout,
		MaxResults:  s.Search.MaxResults,
		SortBy:      s.Search.SortBy,
		Type:        s.Search.Type,
		Verbose:     s.Verbose,
	}
}

func fromVariables(vars Variables) domain.Settings {
	return domain.Settings{
		GitHub: domain.GitHubSettings{
			Token:   vars.GitHubToken,
			BaseURL: vars.APIBaseURL,
			Timeout: vars.APITimeout,
		},
		Search: domain.SearchSettings{
			MaxResults: vars.MaxResults,
			SortBy:     vars.SortBy,
			Type:       vars.Type,
		},
		Verbose: vars.Verbose,
	}
}

// ErrUnknownKey is returned by ParseValue for keys outside KnownKeys.
var ErrUnknownKey = errors.New("unknown config key")

// ParseValue converts a command-line value for key into the type the
// config file stores, rejecting values Load would not accept.
func ParseValue(key, raw string) (any, error) {
	if !slices.Contains(KnownKeys(), key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	switch key {
	case KeyGitHubTimeout:
		if _, err := time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	case KeyGitHubBaseURL:
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, fmt.Errorf("%s: %q is not an http(s) URL", key, raw)
		}
	case KeySearchMaxResults:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if n < domain.MinResults || n > domain.MaxResultsLimit {
			return nil, fmt.Errorf("%s: %d outside [%d,%d]", key, n, domain.MinResults, domain.MaxResultsLimit)
		}
		return n, nil
	case KeySearchSortBy:
		v, err := domain.ParseSortBy(raw)
		if err != nil {
			return nil, err
		}
		return string(v), nil
	case KeySearchType:
		v, err := domain.ParseSourceType(raw)
		if err != nil {
			return nil, err
		}
		return string(v), nil
	case KeyVerbose:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return b, nil
	}
	return raw, nil
}
