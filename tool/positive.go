package tool

import (
	"context"
	"strings"

	"github.com/campuscare/campuscare/core"
)

// PositiveTool handles greetings, happy emotions and motivation requests.
type PositiveTool struct{}

// NewPositiveTool constructs the built-in positive/encouragement tool.
func NewPositiveTool() *PositiveTool { return &PositiveTool{} }

// Name implements Tool.
func (t *PositiveTool) Name() core.ToolName { return core.ToolPositive }

// Description implements Tool.
func (t *PositiveTool) Description() string {
	return "For greetings, happy emotions, motivation"
}

// Execute implements Tool.
func (t *PositiveTool) Execute(_ context.Context, message string) (string, error) {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "happy") || strings.Contains(msg, "great"):
		return "That's wonderful! Keep that positive energy going! Your happiness is inspiring!", nil
	case strings.Contains(msg, "motivat") || strings.Contains(msg, "inspire"):
		return "You've got this! Every small step counts. Keep pushing forward - you're stronger than you think!", nil
	default:
		return "Stay positive! You're doing amazing. Keep that great attitude!", nil
	}
}
