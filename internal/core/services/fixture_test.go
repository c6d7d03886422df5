package services

import (
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// fixtureNow anchors every freshness computation in the fixture.
var fixtureNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixtureNow }

func daysAgo(n int) time.Time {
	return fixtureNow.Add(-time.Duration(n) * 24 * time.Hour)
}

// reactFixture is the "react useeffect cleanup" corpus: 5 code items,
// 3 repositories and 2 issues. Expected scores (at fixtureNow):
//
//	code/effect-cleanup  0.9996   repo/use-effect-cleanup 0.8579
//	issue/runs-twice     0.7656   repo/react              0.7325
//	code/cleanup-ts      0.7167   code/use-effect-md      0.3458
//	code/index           0.3000   issue/memory-leak       0.2877
//	repo/old-lib         0.2219   code/legacy             0.1333
func reactFixture() *mockSourceClient {
	return &mockSourceClient{
		code: []domain.CodeItem{
			{
				FileName: "index.js", Path: "src/index.js", Repository: "acme/app",
				UpdatedAt: daysAgo(0), URL: "https://github.com/acme/app/blob/main/src/index.js",
			},
			{
				FileName: "useEffect.md", Path: "docs/useEffect.md", Repository: "acme/docs",
				Stars: 10, UpdatedAt: daysAgo(365), URL: "https://github.com/acme/docs/blob/main/docs/useEffect.md",
			},
			{
				FileName: "useEffectCleanup.js", Path: "packages/react/src/useEffectCleanup.js", Repository: "facebook/react",
				Stars: 100000, UpdatedAt: daysAgo(1), URL: "https://github.com/facebook/react/blob/main/packages/react/src/useEffectCleanup.js",
			},
			{
				FileName: "legacy.js", Path: "old/react-legacy.js", Repository: "acme/legacy",
				URL: "https://github.com/acme/legacy/blob/main/old/react-legacy.js",
			},
			{
				FileName: "cleanup.ts", Path: "react/effects/cleanup.ts", Repository: "acme/effects",
				Stars: 1000, UpdatedAt: daysAgo(73), URL: "https://github.com/acme/effects/blob/main/react/effects/cleanup.ts",
			},
		},
		repositories: []domain.RepositoryItem{
			{
				FullName: "facebook/react", Description: "The library for web and native user interfaces",
				Language: "JavaScript", Stars: 230000, UpdatedAt: daysAgo(2), URL: "https://github.com/facebook/react",
			},
			{
				FullName: "acme/use-effect-cleanup", Description: "Helpers for useEffect cleanup in React",
				Language: "TypeScript", Stars: 500, UpdatedAt: daysAgo(10), URL: "https://github.com/acme/use-effect-cleanup",
			},
			{
				FullName: "someone/old-lib", Description: "jQuery plugin",
				Language: "JavaScript", Stars: 5000, UpdatedAt: daysAgo(1000), URL: "https://github.com/someone/old-lib",
			},
		},
		issues: []domain.IssueItem{
			{
				Number: 24502, Title: "useEffect cleanup runs twice", Body: "In React 18 strict mode the cleanup runs twice",
				State: "open", Repository: "facebook/react", Reactions: 12, UpdatedAt: daysAgo(3),
				URL: "https://github.com/facebook/react/issues/24502",
			},
			{
				Number: 17, Title: "Memory leak warning", Body: "state update on an unmounted component",
				State: "closed", Repository: "acme/app", UpdatedAt: daysAgo(30),
				URL: "https://github.com/acme/app/issues/17",
			},
		},
	}
}

// links returns the links of results, in order.
func links(results []domain.ScoredResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.Link()
	}
	return out
}
