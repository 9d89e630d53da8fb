// Package domain contains the core business entities for textlens.
//
// Types here are plain data structures with no behaviour beyond simple
// helpers. They are shared by every layer: analyzers produce them,
// services orchestrate them, and adapters translate them to external
// representations.
//
// # Import Rules
//
//   - Can Import: standard library only
//   - Cannot Import: ports, services, adapters, analyzers
package domain
