package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscare/campuscare/core"
)

// WhichStudentPrompt is returned when no known student name appears in the
// message, instead of invoking the gradebook lookup.
const WhichStudentPrompt = "Which student? Available: John, Sarah, Mike, Bob"

// subjectScore keeps the report ordering stable.
type subjectScore struct {
	Subject string
	Score   int
}

// gradeRecord is one student's fixed gradebook entry.
type gradeRecord struct {
	Subjects []subjectScore
	GPA      float64
}

// StudentMarksTool answers academic queries from a fixed gradebook. The set
// of known students is enumerable so argument extraction can scan the raw
// message for a name instead of requiring structured input.
type StudentMarksTool struct {
	students map[string]gradeRecord
}

// NewStudentMarksTool constructs the built-in gradebook tool.
func NewStudentMarksTool() *StudentMarksTool {
	return &StudentMarksTool{
		students: map[string]gradeRecord{
			"john": {
				Subjects: []subjectScore{{"Math", 85}, {"Science", 92}, {"English", 78}, {"History", 88}},
				GPA:      3.6,
			},
			"sarah": {
				Subjects: []subjectScore{{"Math", 95}, {"Science", 89}, {"English", 91}, {"History", 87}},
				GPA:      3.9,
			},
			"mike": {
				Subjects: []subjectScore{{"Math", 72}, {"Science", 68}, {"English", 85}, {"History", 79}},
				GPA:      3.0,
			},
			"bob": {
				Subjects: []subjectScore{{"Math", 99}, {"Science", 77}, {"English", 88}, {"History", 99}},
				GPA:      4.0,
			},
		},
	}
}

// Name implements Tool.
func (t *StudentMarksTool) Name() core.ToolName { return core.ToolStudentMarks }

// Description implements Tool.
func (t *StudentMarksTool) Description() string {
	return "For academic queries about John, Sarah, Mike, Bob"
}

// KnownStudents returns the enumerable set of student names, lowercased.
func (t *StudentMarksTool) KnownStudents() []string {
	return []string{"john", "sarah", "mike", "bob"}
}

// ExtractStudent scans the message for a known student name,
// case-insensitively. The empty string means no name was found.
func (t *StudentMarksTool) ExtractStudent(message string) string {
	msg := strings.ToLower(message)
	for _, name := range t.KnownStudents() {
		if strings.Contains(msg, name) {
			return name
		}
	}
	return ""
}

// Execute implements Tool. Without a recognizable student name it returns the
// fixed prompt asking which student, never an error.
func (t *StudentMarksTool) Execute(_ context.Context, message string) (string, error) {
	name := t.ExtractStudent(message)
	if name == "" {
		return WhichStudentPrompt, nil
	}
	return t.Report(name)
}

// Report renders the academic report for one student.
func (t *StudentMarksTool) Report(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	record, ok := t.students[key]
	if !ok {
		return fmt.Sprintf("Student '%s' not found.\n\nAvailable students: John, Sarah, Mike, Bob", name), nil
	}

	divider := strings.Repeat("=", 45)
	var b strings.Builder
	fmt.Fprintf(&b, "Academic Report for %s\n", titleCase(key))
	b.WriteString(divider + "\n\n")
	for _, s := range record.Subjects {
		fmt.Fprintf(&b, "  %-12s : %d/100\n", s.Subject, s.Score)
	}
	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "  %-12s : %.1f/4.0\n", "Overall GPA", record.GPA)
	b.WriteString(divider)
	return b.String(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
