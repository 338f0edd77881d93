package router

import (
	"strings"

	"github.com/campuscare/campuscare/core"
)

// Default keyword classes, highest priority first. Matching is
// case-insensitive substring containment, mirroring the marker lists the
// assistant was trained around. The academic class includes the known student
// names so "What did Sarah get?" routes without an explicit "marks" keyword.
var (
	DefaultCrisisKeywords = []string{
		"suicide", "kill myself", "self-harm", "end it", "want to die",
	}
	DefaultAcademicKeywords = []string{
		"marks", "grades", "gpa", "john", "sarah", "mike", "bob",
	}
	DefaultNegativeKeywords = []string{
		"sad", "down", "bad", "upset", "depressed", "heartbroken",
		"miserable", "terrible", "awful", "struggling", "hopeless",
	}
	DefaultPositiveKeywords = []string{
		"happy", "great", "good", "wonderful", "awesome",
		"hi", "hello", "hey", "morning", "afternoon", "evening",
	}
)

// KeywordOptions overrides the built-in keyword classes.
type KeywordOptions struct {
	CrisisKeywords   []string
	AcademicKeywords []string
	NegativeKeywords []string
	PositiveKeywords []string
}

// keywordClass binds one priority tier to its tool.
type keywordClass struct {
	tool     core.ToolName
	keywords []string
}

// KeywordRouter is a deterministic, total router: every message maps to a
// tool name, defaulting to the positive tool when nothing matches. It never
// fails and depends on no external capability, which makes it the correctness
// backstop for crisis messages.
type KeywordRouter struct {
	classes []keywordClass
}

// NewKeywordRouter constructs a router with the default keyword classes,
// optionally overridden per class.
func NewKeywordRouter(optFns ...func(o *KeywordOptions)) *KeywordRouter {
	opts := KeywordOptions{
		CrisisKeywords:   DefaultCrisisKeywords,
		AcademicKeywords: DefaultAcademicKeywords,
		NegativeKeywords: DefaultNegativeKeywords,
		PositiveKeywords: DefaultPositiveKeywords,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &KeywordRouter{
		classes: []keywordClass{
			{tool: core.ToolCrisis, keywords: lowerAll(opts.CrisisKeywords)},
			{tool: core.ToolStudentMarks, keywords: lowerAll(opts.AcademicKeywords)},
			{tool: core.ToolNegative, keywords: lowerAll(opts.NegativeKeywords)},
			{tool: core.ToolPositive, keywords: lowerAll(opts.PositiveKeywords)},
		},
	}
}

// Route maps a message to a tool name by scanning the priority classes in
// order. No match defaults to the positive tool; "unknown" is not a result.
func (r *KeywordRouter) Route(message string) core.ToolName {
	msg := strings.ToLower(message)
	for _, class := range r.classes {
		for _, kw := range class.keywords {
			if strings.Contains(msg, kw) {
				return class.tool
			}
		}
	}
	return core.ToolPositive
}

// IsCrisis reports whether the message contains a crisis marker. It is
// exposed separately so the composite router can check it ahead of any
// classifier opinion.
func (r *KeywordRouter) IsCrisis(message string) bool {
	msg := strings.ToLower(message)
	for _, kw := range r.classes[0].keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}
