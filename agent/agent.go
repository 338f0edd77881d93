package agent

import (
	"context"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/history"
	"github.com/campuscare/campuscare/logging"
	"github.com/campuscare/campuscare/router"
	"github.com/campuscare/campuscare/session"
	"github.com/campuscare/campuscare/tool"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// SessionStore owns all per-thread conversational state.
	SessionStore core.SessionStore
	// Registry maps tool names to capabilities.
	Registry *tool.Registry
	// Router resolves a tool name per message.
	Router *router.ToolRouter
	// Logger receives pipeline events (defaults to NoOp).
	Logger logging.Logger
}

// ChatResult is the record returned for every chat call. Success is false
// only on a total pipeline failure (store or registry unavailable); narrower
// failures degrade to fallback routing and fixed responses.
type ChatResult struct {
	Success      bool          `json:"success"`
	Response     string        `json:"response"`
	ToolUsed     core.ToolName `json:"tool_used,omitempty"`
	MessageCount int           `json:"message_count"`
	ThreadID     string        `json:"thread_id"`
}

// Chatbot coordinates routing, tool execution and session recording. Public
// methods are safe for concurrent use; per-thread serialization is the
// session store's responsibility.
type Chatbot struct {
	store    core.SessionStore
	registry *tool.Registry
	router   *router.ToolRouter
	rebuild  *history.Reconstructor
	logger   logging.Logger
}

// New constructs a Chatbot with optional overrides. Defaults: in-memory
// store, built-in tool registry, keyword-only routing, NoOp logger.
func New(optFns ...func(o *Options)) *Chatbot {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore(func(o *session.Options) { o.Logger = opts.Logger })
	}
	if opts.Registry == nil {
		opts.Registry = tool.NewRegistry(func(o *tool.RegistryOptions) { o.Logger = opts.Logger })
	}
	if opts.Router == nil {
		opts.Router = router.NewToolRouter(func(o *router.Options) { o.Logger = opts.Logger })
	}
	return &Chatbot{
		store:    opts.SessionStore,
		registry: opts.Registry,
		router:   opts.Router,
		rebuild:  history.NewReconstructor(func(o *history.Options) { o.Logger = opts.Logger }),
		logger:   opts.Logger,
	}
}

// Chat processes one message for a thread. The returned record always carries
// the thread id; Success is false only when the pipeline itself is unusable.
func (c *Chatbot) Chat(ctx context.Context, threadID, message string) ChatResult {
	if c.store == nil || c.registry == nil || c.router == nil {
		c.logger.Error("chat pipeline unavailable", "thread_id", threadID)
		return ChatResult{Success: false, ThreadID: threadID}
	}

	// Resolve the tool before touching session state; the classifier may be
	// slow and must not extend any critical section.
	toolName := c.router.SelectTool(ctx, message)
	response := c.registry.Execute(ctx, toolName, message)

	if err := c.store.SaveInteraction(threadID, message, response, toolName); err != nil {
		c.logger.Error("failed to record interaction", "thread_id", threadID, "error", err.Error())
		return ChatResult{Success: false, Response: response, ToolUsed: toolName, ThreadID: threadID}
	}

	snap, err := c.store.Snapshot(threadID)
	if err != nil {
		c.logger.Error("failed to read session after save", "thread_id", threadID, "error", err.Error())
		return ChatResult{Success: false, Response: response, ToolUsed: toolName, ThreadID: threadID}
	}

	c.logger.Info("chat completed", "thread_id", threadID, "tool", toolName.String(),
		"message_count", len(snap.Exchanges))
	return ChatResult{
		Success:      true,
		Response:     response,
		ToolUsed:     toolName,
		MessageCount: len(snap.Exchanges),
		ThreadID:     threadID,
	}
}

// History returns the human-readable transcript, oldest first. A never-seen
// thread id yields empty text, not an error.
func (c *Chatbot) History(threadID string) (string, error) {
	snap, err := c.store.Snapshot(threadID)
	if err != nil {
		return "", err
	}
	return history.Transcript(snap), nil
}

// DetailedHistory returns the structured, index-aligned session view.
func (c *Chatbot) DetailedHistory(threadID string) (core.DetailedHistory, error) {
	snap, err := c.store.Snapshot(threadID)
	if err != nil {
		return core.DetailedHistory{}, err
	}
	return c.rebuild.Detailed(snap), nil
}

// Stats returns the read-only statistics projection for a thread.
func (c *Chatbot) Stats(threadID string) (core.Stats, error) {
	snap, err := c.store.Snapshot(threadID)
	if err != nil {
		return core.Stats{}, err
	}
	return core.Stats{
		ThreadID:     snap.ID,
		MessageCount: len(snap.Exchanges),
		ToolsUsed:    snap.ToolUsage,
		CreatedAt:    snap.Created,
		LastActive:   snap.LastActive,
	}, nil
}

// ClearSession removes a thread's state entirely, reporting whether it existed.
func (c *Chatbot) ClearSession(threadID string) bool {
	return c.store.Clear(threadID)
}

// ListSessions returns the ids of all currently-held sessions.
func (c *Chatbot) ListSessions() []string {
	return c.store.ListIDs()
}
