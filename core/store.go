package core

// SessionStore owns all session aggregates for the process. Implementations
// must guarantee exactly-once creation under concurrent first access to the
// same thread id, serialize mutations per session, and never block operations
// on unrelated thread ids against each other.
//
// Sessions are created lazily on first reference, including reads: Snapshot
// of a never-seen thread id returns an empty session, not an error. Only
// Clear removes a session; a subsequent reference to the same id starts a
// fresh session with a new creation timestamp.
type SessionStore interface {
	// GetOrCreate returns the live session for threadID, creating it if absent.
	GetOrCreate(threadID string) (*Session, error)

	// SaveInteraction appends one exchange with its tool attribution. The
	// append is atomic with respect to concurrent calls for the same threadID.
	SaveInteraction(threadID, userMsg, botResponse string, tool ToolName) error

	// Snapshot returns a consistent copy of the session state.
	Snapshot(threadID string) (SessionSnapshot, error)

	// Clear removes the session entirely and reports whether it existed.
	Clear(threadID string) bool

	// ListIDs returns the ids of all currently-held sessions. Order is
	// unspecified but the returned slice is stable for the caller.
	ListIDs() []string
}
