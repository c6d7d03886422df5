package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/scout/internal/adapters/driven/auth"
	"github.com/custodia-labs/scout/internal/adapters/driven/config/env"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the configuration file (~/.scout/config.toml).

Environment variables override the file: SCOUT_GITHUB_TOKEN (or GITHUB_TOKEN),
SCOUT_API_BASE_URL, SCOUT_API_TIMEOUT, SCOUT_MAX_RESULTS, SCOUT_SORT_BY,
SCOUT_TYPE and SCOUT_VERBOSE.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE:  runConfigShow,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store a GitHub personal access token",
	Long: `Stores a GitHub personal access token in the config file.
Without an argument the token is read from stdin, hidden when stdin is a terminal.
An empty token removes the stored one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetToken,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: fmt.Sprintf(`Sets a configuration value in the config file.

Keys:
  %s`, strings.Join(env.KnownKeys(), "\n  ")),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTokenCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Current Settings")
	cmd.Println("================")
	if configStore != nil {
		cmd.Printf("Config file: %s\n", configStore.Path())
	}
	cmd.Println()

	cmd.Println("[GitHub]")
	if settings.GitHub.Token != "" {
		cmd.Printf("  Token: %s\n", auth.MaskToken(settings.GitHub.Token))
	} else {
		cmd.Println("  Token: (not set, anonymous rate limits apply)")
	}
	cmd.Printf("  Auth: %s\n", settings.AuthMethod())
	baseURL := settings.GitHub.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com/"
	}
	cmd.Printf("  Base URL: %s\n", baseURL)
	cmd.Printf("  Timeout: %s\n", settings.GitHub.Timeout)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Max results: %d\n", settings.Search.MaxResults)
	cmd.Printf("  Sort by: %s\n", settings.Search.SortBy)
	cmd.Printf("  Type: %s\n", settings.Search.Type)
	cmd.Println()

	cmd.Printf("Verbose: %t\n", settings.Verbose)
	return nil
}

func runConfigSetToken(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config store %w", errNotConfigured)
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		var err error
		token, err = readToken(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	token = strings.TrimSpace(token)

	if err := configStore.Set(env.KeyGitHubToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	if token == "" {
		cmd.Println("Token removed.")
		return nil
	}
	cmd.Printf("Token %s saved to %s\n", auth.MaskToken(token), configStore.Path())
	return nil
}

// readToken reads one line from in, without echo when in is a terminal.
func readToken(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, "GitHub token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		return string(b), err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config store %w", errNotConfigured)
	}

	key, raw := args[0], args[1]
	value, err := env.ParseValue(key, raw)
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	if key == env.KeyGitHubToken {
		raw = auth.MaskToken(raw)
	}
	cmd.Printf("%s = %s\n", key, raw)
	return nil
}
