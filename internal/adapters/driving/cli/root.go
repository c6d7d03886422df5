package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/logger"
)

// Services bundles what the commands drive.
type Services struct {
	Research driving.ResearchService
	Strategy driving.StrategyService
	Config   driven.ConfigStore
	Settings domain.Settings

	// Reload re-reads configuration and applies it to the running services.
	// Optional; used by the long-running MCP server.
	Reload func() (domain.Settings, error)
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	bootstrap Bootstrap

	researchService driving.ResearchService
	strategyService driving.StrategyService
	configStore     driven.ConfigStore
	settings        = domain.DefaultSettings()
	reload          func() (domain.Settings, error)
)

var errNotConfigured = errors.New("service not configured")

// annotationStandalone marks commands that run without services.
const annotationStandalone = "standalone"

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Research a programming question across GitHub",
	Long: `Scout searches GitHub code, repositories, issues and discussions for a
programming question, scores every hit on keyword match, freshness and
popularity, and prints a layered summary with the best results.

Set a token with "scout config set-token" or the GITHUB_TOKEN environment
variable to raise the search rate limit.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.scout)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap installs the function that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs already-built services.
func SetServices(s *Services) {
	if s == nil {
		researchService, strategyService, configStore, reload = nil, nil, nil, nil
		settings = domain.DefaultSettings()
		return
	}
	researchService = s.Research
	strategyService = s.Strategy
	configStore = s.Config
	settings = s.Settings
	reload = s.Reload
}

// Execute runs the root command with ctx. Command output goes to stdout,
// diagnostics to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if bootstrap == nil || cmd.Annotations[annotationStandalone] != "" {
		return nil
	}
	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	if s.Settings.Verbose {
		logger.SetVerbose(true)
	}
	return nil
}
