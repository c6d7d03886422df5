// Command scout researches programming questions across GitHub.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/scout/internal/adapters/driven/auth"
	"github.com/custodia-labs/scout/internal/adapters/driven/config/env"
	"github.com/custodia-labs/scout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scout/internal/adapters/driving/cli"
	"github.com/custodia-labs/scout/internal/connectors/github"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
	"github.com/custodia-labs/scout/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the configuration, the GitHub client and the services.
func bootstrap(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}

	settings, err := env.Load(store)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	client := github.NewClient(auth.NewTokenProvider(settings), github.ConfigFromSettings(settings.GitHub))
	logger.Debug("GitHub auth: %s", settings.AuthMethod())

	return &cli.Services{
		Research: services.NewResearchService(client),
		Strategy: services.NewStrategyService(),
		Config:   store,
		Settings: settings,
		Reload: func() (domain.Settings, error) {
			s, err := env.Load(store)
			if err != nil {
				return domain.Settings{}, err
			}
			client.SetTokenProvider(auth.NewTokenProvider(s))
			client.Reset(github.ConfigFromSettings(s.GitHub))
			return s, nil
		},
	}, nil
}
