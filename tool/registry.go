package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
)

// Fixed responses for the degraded execution paths. Exported so the request
// layer and tests can match on them.
const (
	// UnknownToolResponse is returned when a name outside the registry is
	// executed. Unreachable given the router's contract, kept as a defensive
	// backstop.
	UnknownToolResponse = "I'm not sure how to help with that."
	// ApologyResponse replaces the reply when a tool fails or panics.
	ApologyResponse = "Sorry, I encountered an error."
)

// Error codes attached to ToolError values emitted by the registry.
const (
	CodeUnknownTool    = "UNKNOWN_TOOL"
	CodeExecutionError = "EXECUTION_ERROR"
)

// RegistryOptions holds dependency overrides passed to NewRegistry.
type RegistryOptions struct {
	// Logger receives tool execution outcomes (defaults to NoOp).
	Logger logging.Logger
	// Tools to register initially; defaults to the four built-ins.
	Tools []Tool
}

// Registry is the fixed mapping from tool name to capability. After
// construction it is read-only and safe for concurrent use. Execute never
// fails from the caller's perspective: unknown names and tool errors both
// degrade to fixed response strings.
type Registry struct {
	tools  map[core.ToolName]Tool
	logger logging.Logger
}

// NewRegistry constructs a registry. Without overrides it carries the four
// built-in tools.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Tools == nil {
		opts.Tools = []Tool{
			NewPositiveTool(),
			NewNegativeTool(),
			NewStudentMarksTool(),
			NewCrisisTool(opts.Logger),
		}
	}
	tools := make(map[core.ToolName]Tool, len(opts.Tools))
	for _, t := range opts.Tools {
		tools[t.Name()] = t
	}
	return &Registry{tools: tools, logger: opts.Logger}
}

// Get returns the tool registered under name.
func (r *Registry) Get(name core.ToolName) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names.
func (r *Registry) Names() []core.ToolName {
	names := make([]core.ToolName, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, n)
	}
	return names
}

// Execute runs the named tool against the message and always returns response
// text. Unknown names return the fixed unknown-tool response; errors and
// panics inside a tool are logged and converted to the fixed apology.
func (r *Registry) Execute(ctx context.Context, name core.ToolName, message string) string {
	t, ok := r.tools[name]
	if !ok {
		r.logger.Error("tool not in registry", "tool", name.String(), "code", CodeUnknownTool)
		return UnknownToolResponse
	}

	start := time.Now()
	response, err := r.executeSafely(ctx, t, message)
	if err != nil {
		r.logger.Error("tool execution failed",
			"tool", name.String(), "code", CodeExecutionError,
			"error", err.Error(), "duration", time.Since(start).String())
		return ApologyResponse
	}
	r.logger.Debug("tool executed", "tool", name.String(), "duration", time.Since(start).String())
	return response
}

// executeSafely converts a panicking tool into a ToolError so a single bad
// handler cannot take down the request.
func (r *Registry) executeSafely(ctx context.Context, t Tool, message string) (response string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = NewToolError(t.Name(), fmt.Sprintf("panic: %v", rec), CodeExecutionError)
		}
	}()
	return t.Execute(ctx, message)
}
