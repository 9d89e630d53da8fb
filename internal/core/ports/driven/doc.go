// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DocumentStore: document persistence (in-memory adapter)
//   - AnalysisCache: per-document analysis memoization
//   - SettingsStore: user configuration persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or analyzer package
package driven
