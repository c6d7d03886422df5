// Package domain defines the core business entities for Scout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Query: A validated research request
//   - Item: A record fetched from one corpus (code, repository, issue)
//   - ScoredResult: An item tagged with its kind and relevance score
//   - Summary: The stats, findings and top results of one research call
//   - Report: Everything a caller gets back from one research call
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
