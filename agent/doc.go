// Package agent implements the chat pipeline: route the message to a tool,
// execute it, record the exchange, and report session counters. Classification
// happens before any session state is touched so a slow classifier never
// holds a per-session lock, and every narrow failure degrades to fallback
// routing or a fixed apology rather than surfacing to the caller.
package agent
