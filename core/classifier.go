package core

import "context"

// Classifier proposes a tool name for a free-text message. Implementations
// are external capabilities (typically LLM-backed) and may fail, time out, or
// return text outside the known tool-name set; their output is advisory only.
// Callers must validate the result with ParseToolName and fall back to
// deterministic routing on any error.
//
// The context is the single suspension point of the chat pipeline: callers
// supply a deadline when the underlying transport can stall.
type Classifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, message string) (string, error)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}
