package core

import (
	"sync"
	"time"
)

// Session is the per-thread conversational aggregate: an append-only exchange
// buffer, a tool-history slice index-aligned with it, per-tool usage counters
// and lifecycle timestamps. It is safe for concurrent access.
//
// Contract:
//   - len(ToolHistory) == len(Exchanges) at all times
//   - sum(ToolUsage values) == len(Exchanges)
//   - AppendExchange is the only mutation and performs all appends, the
//     counter increment and the LastActive bump under one lock acquisition
//   - Snapshot returns a deep copy so readers never observe a mid-append state
type Session struct {
	ID          string           `json:"id"`
	Exchanges   []Exchange       `json:"exchanges"`
	ToolHistory []ToolName       `json:"tool_history"`
	ToolUsage   map[ToolName]int `json:"tool_usage"`
	Created     time.Time        `json:"created"`
	LastActive  time.Time        `json:"last_active"`
	mu          sync.RWMutex
}

// NewSession creates an empty session with both timestamps set to now.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		Exchanges:   []Exchange{},
		ToolHistory: []ToolName{},
		ToolUsage:   map[ToolName]int{},
		Created:     now,
		LastActive:  now,
	}
}

// AppendExchange records one completed interaction: the exchange, its tool
// attribution and the counter increment are applied atomically so concurrent
// appends can never desynchronize the buffer from the tool history.
func (s *Session) AppendExchange(userMsg, botResponse string, tool ToolName, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Exchanges = append(s.Exchanges, Exchange{UserMessage: userMsg, BotResponse: botResponse, Timestamp: now})
	s.ToolHistory = append(s.ToolHistory, tool)
	s.ToolUsage[tool]++
	s.LastActive = now
}

// Len returns the number of recorded exchanges.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Exchanges)
}

// Snapshot returns a consistent deep copy of the session state. Callers may
// read or transform the copy freely without holding up writers.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := SessionSnapshot{
		ID:          s.ID,
		Exchanges:   make([]Exchange, len(s.Exchanges)),
		ToolHistory: make([]ToolName, len(s.ToolHistory)),
		ToolUsage:   make(map[ToolName]int, len(s.ToolUsage)),
		Created:     s.Created,
		LastActive:  s.LastActive,
	}
	copy(snap.Exchanges, s.Exchanges)
	copy(snap.ToolHistory, s.ToolHistory)
	for k, v := range s.ToolUsage {
		snap.ToolUsage[k] = v
	}
	return snap
}

// Stats returns the read-only statistics projection of the session.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	usage := make(map[ToolName]int, len(s.ToolUsage))
	for k, v := range s.ToolUsage {
		usage[k] = v
	}
	return Stats{
		ThreadID:     s.ID,
		MessageCount: len(s.Exchanges),
		ToolsUsed:    usage,
		CreatedAt:    s.Created,
		LastActive:   s.LastActive,
	}
}

// SessionSnapshot is an immutable copy of a session taken at one point in
// time. It shares no memory with the live session.
type SessionSnapshot struct {
	ID          string           `json:"id"`
	Exchanges   []Exchange       `json:"exchanges"`
	ToolHistory []ToolName       `json:"tool_history"`
	ToolUsage   map[ToolName]int `json:"tool_usage"`
	Created     time.Time        `json:"created"`
	LastActive  time.Time        `json:"last_active"`
}

// Stats is the read-only statistics projection exposed to the request layer.
type Stats struct {
	ThreadID     string           `json:"thread_id"`
	MessageCount int              `json:"message_count"`
	ToolsUsed    map[ToolName]int `json:"tools_used"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActive   time.Time        `json:"last_active"`
}

// Turn is one exchange paired with the tool that produced its response,
// positioned by 1-based MessageID.
type Turn struct {
	MessageID   int       `json:"message_id"`
	UserQuery   string    `json:"user_query"`
	BotResponse string    `json:"bot_response"`
	ToolUsed    ToolName  `json:"tool_used"`
	Timestamp   time.Time `json:"timestamp"`
}

// DetailedHistory is the index-aligned reconstruction of a session's
// exchanges and tool attributions. Truncated is set only when the buffer and
// tool history lengths disagreed, which signals a programming defect.
type DetailedHistory struct {
	ThreadID      string    `json:"thread_id"`
	TotalMessages int       `json:"total_messages"`
	Conversation  []Turn    `json:"conversation"`
	CreatedAt     time.Time `json:"created_at"`
	LastActive    time.Time `json:"last_active"`
	Truncated     bool      `json:"truncated,omitempty"`
}
