package router

import (
	"context"
	"time"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
)

// Options holds dependency overrides passed to NewToolRouter.
type Options struct {
	// Keywords is the deterministic fallback router (defaults to the
	// built-in keyword classes).
	Keywords *KeywordRouter
	// Classifier proposes tool names; nil disables classification and the
	// router runs keyword-only.
	Classifier core.Classifier
	// Logger receives classifier outcomes (defaults to NoOp).
	Logger logging.Logger
}

// ToolRouter composes the intent classifier with the keyword fallback.
//
// Selection order:
//  1. Crisis markers always win. The keyword crisis check runs before the
//     classifier so a confidently wrong classification can never route a
//     crisis message elsewhere.
//  2. The classifier's normalized output, when it is a member of the known
//     tool-name set.
//  3. The keyword router, on classifier failure, timeout or out-of-set output.
//
// SelectTool is total: it always returns a valid tool name and never blocks
// on session state, so callers may invoke it before entering any critical
// section.
type ToolRouter struct {
	keywords   *KeywordRouter
	classifier core.Classifier
	logger     logging.Logger
}

// NewToolRouter constructs a composite router with optional overrides.
func NewToolRouter(optFns ...func(o *Options)) *ToolRouter {
	opts := Options{
		Keywords: NewKeywordRouter(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Keywords == nil {
		opts.Keywords = NewKeywordRouter()
	}
	return &ToolRouter{
		keywords:   opts.Keywords,
		classifier: opts.Classifier,
		logger:     opts.Logger,
	}
}

// SelectTool resolves the tool for a message. Classifier failures are logged
// and recovered locally; they are never surfaced to the caller.
func (r *ToolRouter) SelectTool(ctx context.Context, message string) core.ToolName {
	if r.keywords.IsCrisis(message) {
		r.logger.Warn("crisis marker detected, overriding classification")
		return core.ToolCrisis
	}

	if r.classifier == nil {
		return r.keywords.Route(message)
	}

	start := time.Now()
	label, err := r.classifier.Classify(ctx, message)
	if err != nil {
		r.logger.Warn("classifier failed, falling back to keywords",
			"error", err.Error(), "duration", time.Since(start).String())
		return r.keywords.Route(message)
	}

	tool, err := core.ParseToolName(label)
	if err != nil {
		r.logger.Warn("classifier returned unusable label, falling back to keywords",
			"label", label, "error", err.Error())
		return r.keywords.Route(message)
	}
	r.logger.Debug("classifier selected tool", "tool", tool.String(), "duration", time.Since(start).String())
	return tool
}
