package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/adapters/driving/mcp"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can research
programming questions with scout.

Tools:
  research  - research a question and return ranked results and a summary
  classify  - show the search strategy for a question

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Edits to the config file (for example a new token) are applied without
restarting the server.

Examples:
  # Stdio mode (default)
  scout mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  scout mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "scout": {
        "command": "/path/to/scout",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Research: researchService,
		Strategy: strategyService,
		Defaults: defaultQuery(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watchConfig(ctx)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// defaultQuery builds the query template from the search settings.
// Invalid settings fall back to the defaults.
func defaultQuery() domain.Query {
	q := domain.Query{MaxResults: settings.Search.MaxResults}
	if t, err := domain.ParseSourceType(settings.Search.Type); err == nil {
		q.Type = t
	}
	if s, err := domain.ParseSortBy(settings.Search.SortBy); err == nil {
		q.SortBy = s
	}
	if q.MaxResults < domain.MinResults || q.MaxResults > domain.MaxResultsLimit {
		q.MaxResults = domain.DefaultMaxResults
	}
	return q.Normalised()
}

// watchConfig reloads settings when the config file changes, until ctx ends.
func watchConfig(ctx context.Context) {
	store, ok := configStore.(driven.WatchableConfigStore)
	apply := reload
	if !ok || apply == nil {
		return
	}

	go func() {
		err := store.Watch(ctx, func() {
			s, err := apply()
			if err != nil {
				logger.Warn("Config reload failed: %v", err)
				return
			}
			logger.Info("Config reloaded (auth: %s)", s.AuthMethod())
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("Config watch stopped: %v", err)
		}
	}()
}
