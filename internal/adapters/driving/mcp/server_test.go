package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrNilPorts)
		assert.Nil(t, server)
	})

	t.Run("nil research service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingResearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Research: &mockResearchService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		defaults domain.Query
		want     domain.Query
	}{
		{
			name:     "empty defaults",
			defaults: domain.Query{},
			want:     domain.Query{Type: domain.SourceTypeAll, SortBy: domain.SortRelevance, MaxResults: domain.DefaultMaxResults},
		},
		{
			name:     "configured defaults",
			defaults: domain.Query{Text: "ignored", Type: "code", SortBy: domain.SortStars, MaxResults: 5},
			want:     domain.Query{Type: "code", SortBy: domain.SortStars, MaxResults: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Ports{Research: &mockResearchService{}, Defaults: tt.defaults}
			assert.Equal(t, tt.want, p.defaults())
		})
	}
}
