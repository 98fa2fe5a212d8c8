// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DatasetSource: Supplies the closed pull requests of a milestone
//   - DatasetSourceFactory: Builds sources from a file or a GitHub query
//   - DocumentWriter: Persists rendered documents
//   - ConfigStore: Application configuration
//   - TokenProvider: GitHub credentials for API calls
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history. Without it, runs are not recorded.
//   - AuthorDirectory: Contributor profiles. Without it, the authors
//     command is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
