// Package driving defines the interfaces through which external actors
// (CLI, MCP server, filesystem watcher) drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; driving adapters consume them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or analyzer package
package driving
