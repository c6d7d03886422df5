package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

func TestSearchCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"type", "t"},
		{"language", "l"},
		{"limit", "n"},
		{"sort", "s"},
		{"json", ""},
		{"plain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := searchCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestSearchCmd_RequiresQuestion(t *testing.T) {
	env := setupTestServices(t)

	err := env.run("search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
	assert.Zero(t, env.research.calls)
}

func TestSearchCmd_PrintsReport(t *testing.T) {
	env := setupTestServices(t)

	require.NoError(t, env.run("search", "react hooks"))

	out := env.out.String()
	assert.Contains(t, out, "Strategy: general | Sources: code, repository, issue, discussion")
	assert.Contains(t, out, "Research: react hooks")
	assert.Contains(t, out, "acme/use-effect-cleanup")
	assert.Contains(t, out, "https://github.com/acme/use-effect-cleanup")
}

func TestSearchCmd_BuildsQueryFromFlags(t *testing.T) {
	env := setupTestServices(t)

	require.NoError(t, env.run("search",
		"--type", "issues", "--language", "go", "-n", "5", "--sort", "updated",
		"why", "does", "it", "fail"))

	assert.Equal(t, domain.Query{
		Text:       "why does it fail",
		Language:   "go",
		Type:       domain.SourceType(domain.KindIssue),
		MaxResults: 5,
		SortBy:     domain.SortUpdated,
	}, env.research.got)
}

func TestSearchCmd_UsesSettings(t *testing.T) {
	env := setupTestServices(t)
	settings.Search = domain.SearchSettings{MaxResults: 7, SortBy: "stars", Type: "code"}

	require.NoError(t, env.run("search", "react hooks"))

	assert.Equal(t, domain.Query{
		Text:       "react hooks",
		Type:       domain.SourceType(domain.KindCode),
		MaxResults: 7,
		SortBy:     domain.SortStars,
	}, env.research.got)
}

func TestSearchCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"sort", []string{"search", "--sort", "forks", "q"}},
		{"type", []string{"search", "--type", "wiki", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t)

			err := env.run(tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidQuery)
			assert.Zero(t, env.research.calls)
		})
	}
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	env := setupTestServices(t)

	require.NoError(t, env.run("search", "--json", "react hooks"))

	out := env.out.String()
	assert.Contains(t, out, `"id": "r1"`)
	assert.Contains(t, out, `"full_name": "acme/use-effect-cleanup"`)
	assert.Contains(t, out, `"summary"`)
}

func TestSearchCmd_ResearchError(t *testing.T) {
	env := setupTestServices(t)
	env.research.err = errors.New("boom")

	err := env.run("search", "react hooks")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "research failed: boom")
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	env := setupTestServices(t)
	SetServices(nil)

	err := env.run("search", "react hooks")

	require.Error(t, err)
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestDecoratorFor_NonTerminal(t *testing.T) {
	env := setupTestServices(t)
	assert.Equal(t, services.PlainDecorator{}, decoratorFor(env.out))
}
