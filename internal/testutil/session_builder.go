package testutil

import (
	"time"

	"github.com/campuscare/campuscare/core"
)

// SessionBuilder helps construct sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("t1").
//		Exchange("hi", "hello!", core.ToolPositive).
//		Build()
type SessionBuilder struct {
	id    string
	start time.Time
	turns []turn
}

type turn struct {
	user string
	bot  string
	tool core.ToolName
}

// NewSessionBuilder creates a new builder for a session with the given id.
// Use the chainable Exchange method then call Build.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id, start: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)}
}

// StartAt overrides the session creation time (chainable). Each exchange is
// stamped one minute after the previous one.
func (b *SessionBuilder) StartAt(t time.Time) *SessionBuilder {
	b.start = t
	return b
}

// Exchange appends one interaction to the session history (chainable).
func (b *SessionBuilder) Exchange(user, bot string, tool core.ToolName) *SessionBuilder {
	b.turns = append(b.turns, turn{user: user, bot: bot, tool: tool})
	return b
}

// Build returns a *core.Session pre-populated with the recorded exchanges.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.id, b.start)
	for i, tn := range b.turns {
		s.AppendExchange(tn.user, tn.bot, tn.tool, b.start.Add(time.Duration(i+1)*time.Minute))
	}
	return s
}
