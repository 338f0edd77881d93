package session

import (
	"sync"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
)

// Options holds dependency overrides passed to NewInMemoryStore.
type Options struct {
	// Clock supplies session timestamps (defaults to wall clock).
	Clock core.Clock
	// Logger receives store lifecycle events (defaults to NoOp).
	Logger logging.Logger
}

// InMemoryStore is a volatile core.SessionStore keeping sessions in a process
// local map. State lives for the process lifetime and is discarded on
// shutdown; persistence across restarts is explicitly out of scope.
//
// Locking is two-level: the store mutex guards only the map, while each
// session serializes its own mutations. The store lock is never held across
// an append, so interactions on unrelated thread ids do not block each other.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
	clock    core.Clock
	logger   logging.Logger
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{
		Clock:  core.WallClock,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryStore{
		sessions: make(map[string]*core.Session),
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
}

// GetOrCreate returns the existing session or atomically creates an empty
// one. Creation is exactly-once for a given thread id even under concurrent
// first access: the slow path re-checks the map after upgrading to the write
// lock.
func (s *InMemoryStore) GetOrCreate(threadID string) (*core.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[threadID]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[threadID]; ok {
		return sess, nil
	}
	sess = core.NewSession(threadID, s.clock())
	s.sessions[threadID] = sess
	s.logger.Info("session created", "thread_id", threadID)
	return sess, nil
}

// SaveInteraction appends one exchange with its tool attribution. The append
// runs under the session's own lock, so two concurrent saves for the same
// thread id cannot interleave their buffer and tool-history writes.
func (s *InMemoryStore) SaveInteraction(threadID, userMsg, botResponse string, tool core.ToolName) error {
	sess, err := s.GetOrCreate(threadID)
	if err != nil {
		return err
	}
	sess.AppendExchange(userMsg, botResponse, tool, s.clock())
	s.logger.Debug("interaction saved", "thread_id", threadID, "tool", tool.String())
	return nil
}

// Snapshot returns a consistent copy of the session state, lazily creating an
// empty session for a never-seen thread id.
func (s *InMemoryStore) Snapshot(threadID string) (core.SessionSnapshot, error) {
	sess, err := s.GetOrCreate(threadID)
	if err != nil {
		return core.SessionSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Clear removes the session entirely and reports whether it existed. A later
// reference to the same thread id starts a fresh session.
func (s *InMemoryStore) Clear(threadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[threadID]; !ok {
		return false
	}
	delete(s.sessions, threadID)
	s.logger.Info("session cleared", "thread_id", threadID)
	return true
}

// ListIDs returns the ids of all currently-held sessions.
func (s *InMemoryStore) ListIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
