package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestScorer_Bounds(t *testing.T) {
	scorer := NewScorer(fixedClock)

	items := []domain.Item{
		domain.CodeItem{},
		domain.CodeItem{FileName: "a", Stars: math.MaxInt32, UpdatedAt: fixtureNow.Add(48 * time.Hour)},
		domain.RepositoryItem{FullName: "x/y", Stars: -5, UpdatedAt: daysAgo(5000)},
		domain.RepositoryItem{FullName: "react useeffect cleanup", Stars: 1 << 30, UpdatedAt: fixtureNow},
		domain.IssueItem{Title: "react", Reactions: 3, UpdatedAt: daysAgo(100)},
	}
	queries := []string{"", "react", "react useeffect cleanup", "REACT react React", "zzz"}

	for _, item := range items {
		for _, q := range queries {
			score := scorer.Score(item, q)
			assert.GreaterOrEqual(t, score, 0.0, "item %v query %q", item, q)
			assert.LessOrEqual(t, score, 1.0, "item %v query %q", item, q)
		}
	}
}

func TestScorer_Monotonicity(t *testing.T) {
	scorer := NewScorer(fixedClock)
	query := "react useeffect cleanup"

	texts := []string{
		"unrelated",
		"react",
		"react useeffect",
		"react useeffect cleanup",
	}

	prev := -1.0
	for _, desc := range texts {
		item := domain.RepositoryItem{FullName: "o/r", Description: desc, Stars: 250, UpdatedAt: daysAgo(40)}
		score := scorer.Score(item, query)
		assert.GreaterOrEqual(t, score, prev, "description %q", desc)
		prev = score
	}
}

func TestScorer_Formula(t *testing.T) {
	scorer := NewScorer(fixedClock)

	item := domain.RepositoryItem{
		FullName:    "acme/use-effect-cleanup",
		Description: "Helpers for useEffect cleanup in React",
		Stars:       500,
		UpdatedAt:   daysAgo(10),
	}
	want := 0.4*1 + 0.3*(1-10.0/730) + 0.3*(math.Log(501)/math.Log(100001))
	assert.InDelta(t, want, scorer.Score(item, "react useeffect cleanup"), 1e-9)
}

func TestScorer_EdgeCases(t *testing.T) {
	t.Run("empty query scores zero keyword", func(t *testing.T) {
		assert.Zero(t, KeywordMatch("anything", ""))
		assert.Zero(t, KeywordMatch("anything", "   "))
	})

	t.Run("duplicate tokens count once", func(t *testing.T) {
		assert.InDelta(t, 0.5, KeywordMatch("react", "react React vue"), 1e-9)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		assert.Zero(t, Freshness(time.Time{}, false, fixtureNow))
	})

	t.Run("freshness decay", func(t *testing.T) {
		assert.InDelta(t, 1.0, Freshness(fixtureNow, true, fixtureNow), 1e-9)
		assert.InDelta(t, 0.5, Freshness(daysAgo(365), true, fixtureNow), 1e-9)
		assert.Zero(t, Freshness(daysAgo(730), true, fixtureNow))
		assert.Zero(t, Freshness(daysAgo(2000), true, fixtureNow))
		assert.InDelta(t, 1.0, Freshness(fixtureNow.Add(time.Hour), true, fixtureNow), 1e-9)
	})

	t.Run("missing stars", func(t *testing.T) {
		assert.Zero(t, Quality(0, false))
		assert.Zero(t, Quality(0, true))
		assert.Zero(t, Quality(-1, true))
	})

	t.Run("quality reference", func(t *testing.T) {
		assert.InDelta(t, 1.0, Quality(QualityReferenceStars, true), 1e-9)
		assert.InDelta(t, 1.0, Quality(10*QualityReferenceStars, true), 1e-9)
		q := Quality(1000, true)
		assert.Greater(t, q, 0.5)
		assert.Less(t, q, 1.0)
	})
}

func TestScorer_ScoreAll(t *testing.T) {
	scorer := NewScorer(fixedClock)
	items := []domain.Item{
		domain.CodeItem{FileName: "a.go", URL: "a"},
		domain.CodeItem{FileName: "b.go", URL: "b"},
	}

	results := scorer.ScoreAll(domain.KindCode, items, "a.go")
	require.Len(t, results, 2)
	assert.Equal(t, domain.KindCode, results[0].Kind)
	assert.Equal(t, "a", results[0].Item.Link())
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestNewScorer_DefaultClock(t *testing.T) {
	scorer := NewScorer(nil)
	score := scorer.Score(domain.RepositoryItem{UpdatedAt: time.Now()}, "")
	assert.InDelta(t, 0.3, score, 1e-3)
}
