// Package core provides the foundational domain types and contracts used by
// CampusCare. It defines the core abstractions for:
//
//   - Tools (the closed set of response-generating capabilities)
//   - Exchanges (immutable human/assistant message pairs)
//   - Sessions (per-thread conversational state with usage counters)
//   - Pluggable stores for session state and the intent classifier contract
//
// The package intentionally keeps implementation concerns (storage, routing,
// concrete tools, model adapters) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
