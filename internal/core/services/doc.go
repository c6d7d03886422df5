// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The research pipeline runs one way:
//
//	query -> Classify -> ResearchService fan-out -> Scorer -> Aggregate -> Summarize
//
// Services are pure Go with no CGO and no network access of their own.
package services
