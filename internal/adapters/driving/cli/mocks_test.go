package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

// mockResearchService records the last query.
type mockResearchService struct {
	report *domain.Report
	err    error
	got    domain.Query
	calls  int
}

func (m *mockResearchService) Research(_ context.Context, q domain.Query) (*domain.Report, error) {
	m.calls++
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func testReport() *domain.Report {
	repo := domain.ScoredResult{
		Kind:  domain.KindRepository,
		Score: 0.86,
		Item:  domain.RepositoryItem{FullName: "acme/use-effect-cleanup", Stars: 4200, URL: "https://github.com/acme/use-effect-cleanup"},
	}
	return &domain.Report{
		ID:       "r1",
		Query:    domain.Query{Text: "react hooks"},
		Strategy: domain.Strategy{Category: domain.CategoryGeneral, RewrittenQuery: "react hooks"},
		Sources:  domain.AllKinds(),
		Results:  []domain.ScoredResult{repo},
		Summary: domain.Summary{
			Query:     "react hooks",
			Total:     1,
			Breakdown: domain.Breakdown{Repositories: 1},
			Top:       domain.TopResults{Repositories: []domain.ScoredResult{repo}},
		},
	}
}

type testEnv struct {
	research *mockResearchService
	store    *file.ConfigStore
	out      *bytes.Buffer
}

// setupTestServices installs mock services and resets global state after the test.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		research: &mockResearchService{report: testReport()},
		store:    store,
		out:      new(bytes.Buffer),
	}
	SetServices(&Services{
		Research: env.research,
		Strategy: services.NewStrategyService(),
		Config:   store,
		Settings: domain.DefaultSettings(),
	})
	rootCmd.SetOut(env.out)
	rootCmd.SetErr(env.out)

	t.Cleanup(func() {
		SetServices(nil)
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})
	return env
}

// run executes the root command with args.
func (e *testEnv) run(args ...string) error {
	e.out.Reset()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// resetFlags restores flag values and Changed state, which cobra keeps
// between executions.
func resetFlags() {
	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		cmd.Flags().VisitAll(reset)
		cmd.PersistentFlags().VisitAll(reset)
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}
