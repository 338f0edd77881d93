package tool

import (
	"context"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
)

const crisisResponse = `IMMEDIATE CRISIS SUPPORT RESOURCES
==========================================

If you're in crisis, please reach out RIGHT NOW:

EMERGENCY HELPLINES:
  - 988 (US) - Suicide & Crisis Lifeline
    Available 24/7 - Call or Text

  - Text HOME to 741741
    Crisis Text Line - Free 24/7 support

  - 911 - For immediate emergency

INTERNATIONAL:
  Visit: https://www.iasp.info/resources/Crisis_Centres/

YOU ARE NOT ALONE
Your life has value. Help is available RIGHT NOW.

Please reach out to:
  - A trusted friend or family member
  - Mental health professional
  - Hospital emergency room
  - Call 911 if in immediate danger

This feeling is temporary. Help is available. You matter.
==========================================`

// CrisisTool provides crisis support resources for self-harm or suicide
// mentions. Its activation is logged at warn level so operators can audit the
// correctness-critical path.
type CrisisTool struct {
	logger logging.Logger
}

// NewCrisisTool constructs the built-in crisis support tool.
func NewCrisisTool(logger logging.Logger) *CrisisTool {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &CrisisTool{logger: logger}
}

// Name implements Tool.
func (t *CrisisTool) Name() core.ToolName { return core.ToolCrisis }

// Description implements Tool.
func (t *CrisisTool) Description() string {
	return "For self-harm or suicide mentions"
}

// Execute implements Tool.
func (t *CrisisTool) Execute(_ context.Context, _ string) (string, error) {
	t.logger.Warn("crisis tool activated")
	return crisisResponse, nil
}
