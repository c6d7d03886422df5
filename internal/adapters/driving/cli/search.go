package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/scout/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

var (
	searchType     string
	searchLanguage string
	searchLimit    int
	searchSort     string
	searchJSON     bool
	searchPlain    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <question>",
	Short: "Research a question across GitHub",
	Long: `Classifies the question, searches the matching GitHub corpora in parallel
and ranks every hit by keyword match, freshness and popularity.

The report lists statistics, key findings and the top five results of
each kind. Sources that fail are listed under "Incomplete"; the others
are still reported.

Examples:
  scout search "how to implement jwt auth in go"
  scout search "why does useEffect fail" --type issue
  scout search "best http router" --language go --sort stars --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "source type: all, code, repository, issue, discussion")
	searchCmd.Flags().StringVarP(&searchLanguage, "language", "l", "", "restrict results to a programming language")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of ranked results (1-100)")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "", "sort order: relevance, stars, updated")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the report as JSON")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "disable styled output")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return fmt.Errorf("research %w", errNotConfigured)
	}

	q, err := buildQuery(strings.Join(args, " "))
	if err != nil {
		return err
	}

	report, err := researchService.Research(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	if searchJSON {
		return outputReportJSON(cmd, report)
	}

	out := cmd.OutOrStdout()
	_, err = fmt.Fprint(out, services.FormatReport(report, decoratorFor(out)))
	return err
}

// buildQuery applies flags over the configured search settings.
func buildQuery(text string) (domain.Query, error) {
	q := domain.Query{
		Text:       text,
		Language:   searchLanguage,
		MaxResults: settings.Search.MaxResults,
	}
	if searchLimit != 0 {
		q.MaxResults = searchLimit
	}
	if q.MaxResults == 0 {
		q.MaxResults = domain.DefaultMaxResults
	}

	typ := settings.Search.Type
	if searchType != "" {
		typ = searchType
	}
	t, err := domain.ParseSourceType(typ)
	if err != nil {
		return domain.Query{}, err
	}
	q.Type = t

	sortBy := settings.Search.SortBy
	if searchSort != "" {
		sortBy = searchSort
	}
	s, err := domain.ParseSortBy(sortBy)
	if err != nil {
		return domain.Query{}, err
	}
	q.SortBy = s

	return q, nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// decoratorFor styles output only when w is a terminal.
func decoratorFor(w io.Writer) services.Decorator {
	if searchPlain {
		return services.PlainDecorator{}
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.NewDecorator(nil)
	}
	return services.PlainDecorator{}
}
