package core

import (
	"fmt"
	"strings"
)

// ToolName identifies one of the assistant's response handlers. The set is
// closed: values outside the declared constants are rejected by
// ParseToolName, so downstream code never dispatches on an unknown name.
type ToolName string

const (
	// ToolPositive handles greetings, happy emotions and motivation requests.
	ToolPositive ToolName = "positive_tool"
	// ToolNegative handles sad emotions, struggles and problems.
	ToolNegative ToolName = "negative_tool"
	// ToolStudentMarks answers academic queries about known students.
	ToolStudentMarks ToolName = "student_marks_tool"
	// ToolCrisis provides crisis support resources for self-harm mentions.
	// Routing to it must never depend on an external classifier.
	ToolCrisis ToolName = "crisis_tool"
)

// AllToolNames returns the closed set of tool names in priority-neutral,
// stable order.
func AllToolNames() []ToolName {
	return []ToolName{ToolPositive, ToolNegative, ToolStudentMarks, ToolCrisis}
}

// String implements fmt.Stringer.
func (n ToolName) String() string { return string(n) }

// Valid reports whether n is a member of the closed tool-name set.
func (n ToolName) Valid() bool {
	switch n {
	case ToolPositive, ToolNegative, ToolStudentMarks, ToolCrisis:
		return true
	}
	return false
}

// ParseToolName normalizes raw classifier output (trim + lowercase) and
// validates membership in the closed tool-name set. Classifier output is
// advisory; any string failing this check must be treated as a classification
// failure by the caller.
func ParseToolName(s string) (ToolName, error) {
	n := ToolName(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("unknown tool name %q", s)
	}
	return n, nil
}
