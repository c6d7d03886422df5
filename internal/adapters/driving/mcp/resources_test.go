package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractReportID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid report URI", "scout://reports/abc-123", "abc-123"},
		{"invalid prefix", "file://reports/abc-123", ""},
		{"nested path", "scout://reports/abc/extra", ""},
		{"list URI", "scout://reports", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractReportID(tt.uri))
		})
	}
}

func TestServer_handleStrategiesResource(t *testing.T) {
	server, err := NewServer(&Ports{Research: &mockResearchService{}})
	require.NoError(t, err)

	result, err := server.handleStrategiesResource(context.Background(), makeReadResourceRequest("scout://strategies"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var infos []struct {
		Category string   `json:"category"`
		Sources  []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "implementation", infos[0].Category)
	assert.Equal(t, []string{"code", "repository"}, infos[0].Sources)
	assert.Equal(t, "general", infos[4].Category)
	assert.Len(t, infos[4].Sources, 4)
}

func TestServer_handleReportResources(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Research: &mockResearchService{}})
	require.NoError(t, err)

	t.Run("empty list", func(t *testing.T) {
		result, err := server.handleReportsResource(ctx, makeReadResourceRequest("scout://reports"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	server.reports.put(testReport("r1"))
	server.reports.put(testReport("r2"))

	t.Run("list newest first", func(t *testing.T) {
		result, err := server.handleReportsResource(ctx, makeReadResourceRequest("scout://reports"))
		require.NoError(t, err)

		var infos []struct {
			ID  string `json:"id"`
			URI string `json:"uri"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 2)
		assert.Equal(t, "r2", infos[0].ID)
		assert.Equal(t, "scout://reports/r1", infos[1].URI)
	})

	t.Run("read report", func(t *testing.T) {
		result, err := server.handleReportResource(ctx, makeReadResourceRequest("scout://reports/r1"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "acme/use-effect-cleanup")
		assert.Contains(t, result.Contents[0].Text, `"id": "r1"`)
	})

	t.Run("unknown report", func(t *testing.T) {
		_, err := server.handleReportResource(ctx, makeReadResourceRequest("scout://reports/missing"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleReportResource(ctx, makeReadResourceRequest("scout://reports/"))
		assert.Error(t, err)
	})
}

func TestReportCache_Evicts(t *testing.T) {
	c := newReportCache(3)
	for i := range 5 {
		c.put(testReport(fmt.Sprintf("r%d", i)))
	}

	_, ok := c.get("r0")
	assert.False(t, ok)
	_, ok = c.get("r4")
	assert.True(t, ok)

	ids := make([]string, 0, 3)
	for _, r := range c.list() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r4", "r3", "r2"}, ids)

	c.put(nil)
	assert.Len(t, c.list(), 3)
}
