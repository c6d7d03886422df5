package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/services"
)

// ResearchInput is the input schema for the research tool.
type ResearchInput struct {
	Question   string `json:"question" jsonschema:"the programming question or keywords to research"`
	Language   string `json:"language,omitempty" jsonschema:"restrict results to a programming language, e.g. go or typescript"`
	Type       string `json:"type,omitempty" jsonschema:"one of all, code, repository, issue, discussion (default all)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of ranked results, 1 to 100 (default 20)"`
	SortBy     string `json:"sort_by,omitempty" jsonschema:"one of relevance, stars, updated (default relevance)"`
}

// ResearchOutput is the output schema for the research tool.
type ResearchOutput struct {
	ID       string          `json:"id"`
	Query    string          `json:"query"`
	Strategy string          `json:"strategy"`
	Language string          `json:"language,omitempty"`
	Sources  []string        `json:"sources"`
	Total    int             `json:"total"`
	Results  []ResultOutput  `json:"results"`
	Findings []string        `json:"findings"`
	Failures []FailureOutput `json:"failures,omitempty"`
	Complete bool            `json:"complete"`
	Summary  string          `json:"summary"`
}

// ResultOutput is one ranked result.
type ResultOutput struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	URL       string  `json:"url"`
	Score     float64 `json:"score"`
	Stars     int     `json:"stars,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// FailureOutput is one source that failed.
type FailureOutput struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// ClassifyInput is the input schema for the classify tool.
type ClassifyInput struct {
	Question string `json:"question" jsonschema:"the programming question to classify"`
}

// ClassifyOutput is the output schema for the classify tool.
type ClassifyOutput struct {
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	RewrittenQuery string   `json:"rewritten_query"`
	Language       string   `json:"language,omitempty"`
	Sources        []string `json:"sources"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "research",
		Description: "Research a programming question across GitHub code, repositories, " +
			"issues and discussions. Returns ranked results and a layered summary.",
	}, s.handleResearch)

	if s.ports.Strategy != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "classify",
			Description: "Classify a programming question and show the search strategy research would use",
		}, s.handleClassify)
	}
}

// handleResearch handles the research tool invocation.
func (s *Server) handleResearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResearchInput,
) (*mcp.CallToolResult, ResearchOutput, error) {
	q, err := s.buildQuery(input)
	if err != nil {
		return nil, ResearchOutput{}, err
	}

	report, err := s.ports.Research.Research(ctx, q)
	if err != nil {
		return nil, ResearchOutput{}, fmt.Errorf("research failed: %w", err)
	}
	s.reports.put(report)

	output := toResearchOutput(report)
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output.Summary}},
	}
	return result, output, nil
}

func (s *Server) buildQuery(input ResearchInput) (domain.Query, error) {
	q := s.ports.defaults()
	q.Text = input.Question
	if input.Language != "" {
		q.Language = input.Language
	}
	if input.Type != "" {
		t, err := domain.ParseSourceType(input.Type)
		if err != nil {
			return domain.Query{}, err
		}
		q.Type = t
	}
	if input.SortBy != "" {
		sortBy, err := domain.ParseSortBy(input.SortBy)
		if err != nil {
			return domain.Query{}, err
		}
		q.SortBy = sortBy
	}
	if input.MaxResults != 0 {
		q.MaxResults = input.MaxResults
	}
	return q, nil
}

func toResearchOutput(r *domain.Report) ResearchOutput {
	out := ResearchOutput{
		ID:       r.ID,
		Query:    r.Query.Text,
		Strategy: r.Strategy.Category.String(),
		Language: r.Strategy.Language,
		Sources:  make([]string, len(r.Sources)),
		Total:    r.Summary.Total,
		Results:  make([]ResultOutput, len(r.Results)),
		Findings: make([]string, len(r.Summary.Findings)),
		Complete: r.Complete(),
		Summary:  services.FormatReport(r, nil),
	}
	for i, k := range r.Sources {
		out.Sources[i] = k.String()
	}
	for i, res := range r.Results {
		out.Results[i] = toResultOutput(res)
	}
	for i, f := range r.Summary.Findings {
		out.Findings[i] = f.Text
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, FailureOutput{Kind: f.Kind.String(), Error: f.Message})
	}
	return out
}

func toResultOutput(r domain.ScoredResult) ResultOutput {
	out := ResultOutput{
		Kind:     r.Kind.String(),
		Name:     r.Item.Name(),
		Location: r.Item.Location(),
		URL:      r.Item.Link(),
		Score:    r.Score,
	}
	if stars, ok := r.Item.Popularity(); ok {
		out.Stars = stars
	}
	if t, ok := r.Item.LastUpdated(); ok {
		out.UpdatedAt = t.UTC().Format(time.RFC3339)
	}
	return out
}

// handleClassify handles the classify tool invocation.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if input.Question == "" {
		return nil, ClassifyOutput{}, fmt.Errorf("%w: text is empty", domain.ErrInvalidQuery)
	}

	st := s.ports.Strategy.Classify(input.Question)
	kinds := st.Category.RecommendedKinds()
	out := ClassifyOutput{
		Category:       st.Category.String(),
		Description:    st.Category.Description(),
		RewrittenQuery: st.RewrittenQuery,
		Language:       st.Language,
		Sources:        make([]string, len(kinds)),
	}
	for i, k := range kinds {
		out.Sources[i] = k.String()
	}
	return nil, out, nil
}
