// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SourceClient: Searches code, repositories, issues and discussions
//   - DiscussionSearcher: Discussion search, currently an issue-endpoint fallback
//   - TokenProvider: Access token for the search provider
//   - ConfigStore: Application configuration
//   - WatchableConfigStore: ConfigStore with change notification
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
