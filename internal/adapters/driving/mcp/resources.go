package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scout/internal/core/domain"
)

const (
	uriScheme = "scout://"

	// RecentReports is how many research reports stay readable as resources.
	RecentReports = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "strategies",
		Name:        "strategies",
		Description: "Question categories and the sources each one searches",
		MIMEType:    "application/json",
	}, s.handleStrategiesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Recent research reports, newest first",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "A full research report",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

func (s *Server) handleStrategiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type strategyInfo struct {
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Sources     []string `json:"sources"`
	}

	categories := []domain.Category{
		domain.CategoryImplementation,
		domain.CategoryDebugging,
		domain.CategorySelection,
		domain.CategoryBestPractice,
		domain.CategoryGeneral,
	}
	infos := make([]strategyInfo, len(categories))
	for i, c := range categories {
		kinds := c.RecommendedKinds()
		sources := make([]string, len(kinds))
		for j, k := range kinds {
			sources[j] = k.String()
		}
		infos[i] = strategyInfo{Category: c.String(), Description: c.Description(), Sources: sources}
	}

	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleReportsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type reportInfo struct {
		ID       string `json:"id"`
		Query    string `json:"query"`
		Total    int    `json:"total"`
		Complete bool   `json:"complete"`
		URI      string `json:"uri"`
	}

	reports := s.reports.list()
	infos := make([]reportInfo, len(reports))
	for i, r := range reports {
		infos[i] = reportInfo{
			ID:       r.ID,
			Query:    r.Query.Text,
			Total:    r.Summary.Total,
			Complete: r.Complete(),
			URI:      uriScheme + "reports/" + r.ID,
		}
	}

	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleReportResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractReportID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, ok := s.reports.get(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, report)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractReportID extracts the report ID from a URI like scout://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

// reportCache keeps the most recent reports by ID.
type reportCache struct {
	mu    sync.Mutex
	size  int
	order []string
	byID  map[string]*domain.Report
}

func newReportCache(size int) *reportCache {
	return &reportCache{size: size, byID: make(map[string]*domain.Report, size)}
}

func (c *reportCache) put(r *domain.Report) {
	if r == nil || r.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[r.ID]; !ok {
		c.order = append(c.order, r.ID)
	}
	c.byID[r.ID] = r

	for len(c.order) > c.size {
		delete(c.byID, c.order[0])
		c.order = c.order[1:]
	}
}

func (c *reportCache) get(id string) (*domain.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.byID[id]
	return r, ok
}

// list returns the cached reports, newest first.
func (c *reportCache) list() []*domain.Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*domain.Report, 0, len(c.order))
	for i := len(c.order) - 1; i >= 0; i-- {
		out = append(out, c.byID[c.order[i]])
	}
	return out
}
