// Package tool implements the assistant's response handlers: the Tool
// contract, the closed registry dispatching on validated tool names, and the
// four built-in tools (positive, negative, student marks, crisis). Execution
// failures are converted to fixed responses and logged; they are never fatal
// to a chat request.
package tool

import (
	"context"
	"fmt"

	"github.com/campuscare/campuscare/core"
)

// Tool is a named response-generating capability selected per message.
//
// Tool implementations should:
//   - Return their core.ToolName identity from Name
//   - Treat the raw user message as input and extract any arguments themselves
//   - Be safe for concurrent use; tools hold no per-request state
//   - Return errors rather than panic; the registry converts both to the
//     fixed apology response
type Tool interface {
	// Name returns the tool's identity within the closed tool-name set.
	Name() core.ToolName

	// Description returns a human-readable description of what this tool
	// does. It is surfaced to the intent classifier's selection instruction.
	Description() string

	// Execute produces the response text for the given user message.
	Execute(ctx context.Context, message string) (string, error)
}

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    core.ToolName `json:"tool"`              // Name of the tool that failed
	Message string        `json:"message"`           // Error message
	Code    string        `json:"code"`              // Error code for categorization
	Details interface{}   `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool core.ToolName, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
