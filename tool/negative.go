package tool

import (
	"context"

	"github.com/campuscare/campuscare/core"
)

const empathyResponse = `I hear you, and your feelings are completely valid.

Remember:
- It's okay to not be okay sometimes
- This difficult moment will pass
- You've overcome challenges before, and you can do it again
- Small steps are still progress
- Take care of yourself today

Tomorrow is a new day with new possibilities.`

// NegativeTool responds with empathy to sad emotions and struggles.
type NegativeTool struct{}

// NewNegativeTool constructs the built-in empathy tool.
func NewNegativeTool() *NegativeTool { return &NegativeTool{} }

// Name implements Tool.
func (t *NegativeTool) Name() core.ToolName { return core.ToolNegative }

// Description implements Tool.
func (t *NegativeTool) Description() string {
	return "For sad emotions, struggles, problems"
}

// Execute implements Tool.
func (t *NegativeTool) Execute(_ context.Context, _ string) (string, error) {
	return empathyResponse, nil
}
