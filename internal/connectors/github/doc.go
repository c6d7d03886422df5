// Package github implements the search provider on top of the GitHub REST
// search API.
//
// Client satisfies driven.SourceClient and driven.DiscussionSearcher:
//
//   - SearchCode: /search/code
//   - SearchRepositories: /search/repositories
//   - SearchIssues: /search/issues with an is:issue qualifier
//   - SearchDiscussions: /search/issues with is:issue and a comment floor,
//     items flagged ViaIssueFallback
//
// Each call validates its arguments, waits on the rate limiter, sends exactly
// one request and maps failures to *domain.SourceSearchError. Nothing is
// retried or cached.
//
// # Authentication
//
// A driven.TokenProvider supplies a personal access token, sent through an
// oauth2 static token source. Without a token the client searches
// anonymously, which GitHub limits to 10 search requests per minute.
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket allows bursts of four requests
//     and refills at the authenticated search quota of 30 per minute.
//
//  2. Reactive limiting: X-RateLimit-* headers are tracked from every
//     response, and requests wait for the reset time once the quota is spent.
//
// Rate limit responses are surfaced as RateLimitError.
package github
