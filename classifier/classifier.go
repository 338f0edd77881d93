// Package classifier provides intent classifier implementations satisfying
// core.Classifier: LLM-backed adapters live in the openai and anthropic
// sub-packages, while this package carries the shared selection instruction
// and deterministic test doubles so routing logic is testable without a live
// network dependency.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscare/campuscare/core"
)

// selectorDescriptions are the tool summaries embedded in the selection
// instruction, in routing-priority-neutral display order.
var selectorDescriptions = []struct {
	name core.ToolName
	desc string
}{
	{core.ToolPositive, "For greetings, happy emotions, motivation"},
	{core.ToolNegative, "For sad emotions, struggles, problems"},
	{core.ToolStudentMarks, "For academic queries about John, Sarah, Mike, Bob"},
	{core.ToolCrisis, "For self-harm or suicide mentions"},
}

// SelectorInstruction builds the strict system instruction given to the
// model: emit exactly one of the known tool names and nothing else. Output is
// still normalized and validated by the router; the instruction only raises
// the hit rate.
func SelectorInstruction() string {
	var b strings.Builder
	b.WriteString("Given a user message, select the most appropriate tool.\n\nTOOLS:\n")
	for i, d := range selectorDescriptions {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, d.name, d.desc)
	}
	b.WriteString("\nRespond with ONLY the tool name (e.g., \"positive_tool\"). No explanation.")
	return b.String()
}

// Static is a test double that always returns the same label.
type Static struct {
	Label string
}

// Classify implements core.Classifier.
func (s Static) Classify(context.Context, string) (string, error) {
	return s.Label, nil
}

// Failing is a test double that always fails.
type Failing struct {
	Err error
}

// Classify implements core.Classifier.
func (f Failing) Classify(context.Context, string) (string, error) {
	return "", f.Err
}
