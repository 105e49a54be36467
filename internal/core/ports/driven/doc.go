// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusStore: Loads the reference corpus from storage
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Oracle: External compliance analysis. Without it, the AI stage is
//     disabled and only checklist verification and retrieval preview run.
//   - ReportStore: Review run audit history. Without it, runs are not persisted.
//   - ConfigStore: Application configuration.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
