package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scout/internal/core/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <question>",
	Short: "Show the search strategy for a question",
	Long: `Shows how a question is classified, the rewritten query that is sent to
GitHub, the inferred language and the sources that would be searched.
No network requests are made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if strategyService == nil {
		return fmt.Errorf("strategy %w", errNotConfigured)
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("%w: text is empty", domain.ErrInvalidQuery)
	}

	st := strategyService.Classify(text)

	kinds := st.Category.RecommendedKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	cmd.Printf("Category:  %s\n", st.Category.Description())
	cmd.Printf("Query:     %s\n", st.RewrittenQuery)
	if st.Language != "" {
		cmd.Printf("Language:  %s\n", st.Language)
	} else {
		cmd.Println("Language:  (none)")
	}
	cmd.Printf("Sources:   %s\n", strings.Join(names, ", "))
	return nil
}
