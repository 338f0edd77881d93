// Package campuscare provides a high-level façade over the chat pipeline and
// service abstractions (sessions, tools, routing & logging) for building a
// conversational student-support assistant. Most applications interact with
// this package by:
//  1. Creating a CampusCare via New() (optionally supplying a classifier,
//     custom tools or a different session store)
//  2. Calling Chat per incoming message
//  3. Reading back transcripts, detailed histories and statistics per thread
//
// The façade delegates orchestration to agent.Chatbot while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing: state is in-memory and routing is keyword-only until a classifier
// is supplied.
package campuscare

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuscare/campuscare/agent"
	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
	"github.com/campuscare/campuscare/router"
	"github.com/campuscare/campuscare/session"
	"github.com/campuscare/campuscare/tool"
)

// Options configures the CampusCare instance.
type Options struct {
	// Classifier proposes tool names for free-text messages. Nil runs the
	// deterministic keyword router only.
	Classifier core.Classifier

	// KeywordOverrides replace individual keyword classes of the fallback
	// router; nil entries keep the defaults.
	KeywordOverrides func(o *router.KeywordOptions)

	// Stores (defaults to the in-memory implementation if not provided).
	SessionStore core.SessionStore

	// Registry (defaults to the four built-in tools).
	Registry *tool.Registry

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// CampusCare is the high-level façade aggregating the chat pipeline and its
// services. Methods are safe for concurrent use.
type CampusCare struct {
	opts    Options
	chatbot *agent.Chatbot
}

// New creates a new CampusCare instance with optional overrides. Any unset
// service is initialized with its in-memory / built-in implementation.
func New(optFns ...func(o *Options)) *CampusCare {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	keywordFns := []func(o *router.KeywordOptions){}
	if opts.KeywordOverrides != nil {
		keywordFns = append(keywordFns, opts.KeywordOverrides)
	}
	toolRouter := router.NewToolRouter(func(o *router.Options) {
		o.Keywords = router.NewKeywordRouter(keywordFns...)
		o.Classifier = opts.Classifier
		o.Logger = opts.Logger
	})

	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore(func(o *session.Options) { o.Logger = opts.Logger })
	}
	if opts.Registry == nil {
		opts.Registry = tool.NewRegistry(func(o *tool.RegistryOptions) { o.Logger = opts.Logger })
	}

	chatbot := agent.New(func(o *agent.Options) {
		o.SessionStore = opts.SessionStore
		o.Registry = opts.Registry
		o.Router = toolRouter
		o.Logger = opts.Logger
	})

	return &CampusCare{opts: opts, chatbot: chatbot}
}

// Chat processes one message. An empty thread id is replaced with a fresh
// UUID so anonymous callers start their own conversation; the id used is
// echoed back in the result.
func (c *CampusCare) Chat(ctx context.Context, threadID, message string) agent.ChatResult {
	if threadID == "" {
		threadID = uuid.NewString()
	}
	return c.chatbot.Chat(ctx, threadID, message)
}

// GetHistory returns the thread's transcript as alternating "Human:" / "AI:"
// lines, oldest first. A never-seen id returns empty text.
func (c *CampusCare) GetHistory(threadID string) (string, error) {
	return c.chatbot.History(threadID)
}

// GetDetailedHistory returns the structured, index-aligned session view.
func (c *CampusCare) GetDetailedHistory(threadID string) (core.DetailedHistory, error) {
	return c.chatbot.DetailedHistory(threadID)
}

// GetStats returns the read-only statistics projection for a thread.
func (c *CampusCare) GetStats(threadID string) (core.Stats, error) {
	return c.chatbot.Stats(threadID)
}

// ClearSession removes a thread's state entirely, reporting whether it existed.
func (c *CampusCare) ClearSession(threadID string) bool {
	return c.chatbot.ClearSession(threadID)
}

// ListSessions returns the ids of all currently-held sessions.
func (c *CampusCare) ListSessions() []string {
	return c.chatbot.ListSessions()
}
