// Package history reconstructs read views of a session: the structured,
// index-aligned detailed history and the human-readable transcript. All
// reconstruction works on snapshots and never mutates session state.
package history

import (
	"strings"

	"github.com/campuscare/campuscare/core"
	"github.com/campuscare/campuscare/logging"
)

// Options holds dependency overrides passed to NewReconstructor.
type Options struct {
	// Logger receives invariant-violation reports (defaults to NoOp).
	Logger logging.Logger
}

// Reconstructor builds detailed histories by zipping a snapshot's exchange
// buffer with its tool history by index. A length mismatch between the two is
// an internal-consistency defect that cannot occur under correct concurrency
// control; when detected it is logged loudly, the view is truncated to the
// shorter length and flagged, and unrelated turns are never paired up by
// scanning.
type Reconstructor struct {
	logger logging.Logger
}

// NewReconstructor constructs a Reconstructor with optional overrides.
func NewReconstructor(optFns ...func(o *Options)) *Reconstructor {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Reconstructor{logger: opts.Logger}
}

// Detailed pairs snapshot.Exchanges[i] with snapshot.ToolHistory[i], assigning
// 1-based message ids.
func (r *Reconstructor) Detailed(snap core.SessionSnapshot) core.DetailedHistory {
	n := len(snap.Exchanges)
	truncated := false
	if len(snap.ToolHistory) != n {
		r.logger.Error("buffer and tool history lengths diverged, truncating to shorter",
			"thread_id", snap.ID,
			"exchanges", len(snap.Exchanges),
			"tool_history", len(snap.ToolHistory))
		if len(snap.ToolHistory) < n {
			n = len(snap.ToolHistory)
		}
		truncated = true
	}

	conversation := make([]core.Turn, 0, n)
	for i := 0; i < n; i++ {
		ex := snap.Exchanges[i]
		conversation = append(conversation, core.Turn{
			MessageID:   i + 1,
			UserQuery:   ex.UserMessage,
			BotResponse: ex.BotResponse,
			ToolUsed:    snap.ToolHistory[i],
			Timestamp:   ex.Timestamp,
		})
	}
	return core.DetailedHistory{
		ThreadID:      snap.ID,
		TotalMessages: n,
		Conversation:  conversation,
		CreatedAt:     snap.Created,
		LastActive:    snap.LastActive,
		Truncated:     truncated,
	}
}

// Transcript renders the full conversation as alternating "Human:" / "AI:"
// lines, oldest first. An empty session renders as empty text.
func Transcript(snap core.SessionSnapshot) string {
	if len(snap.Exchanges) == 0 {
		return ""
	}
	lines := make([]string, 0, 2*len(snap.Exchanges))
	for _, ex := range snap.Exchanges {
		lines = append(lines, "Human: "+ex.UserMessage)
		lines = append(lines, "AI: "+ex.BotResponse)
	}
	return strings.Join(lines, "\n")
}

// RecentTranscript renders only the last n exchanges, for callers that prepend
// a short context window to model input.
func RecentTranscript(snap core.SessionSnapshot, n int) string {
	if n <= 0 || len(snap.Exchanges) == 0 {
		return ""
	}
	if n > len(snap.Exchanges) {
		n = len(snap.Exchanges)
	}
	trimmed := snap
	trimmed.Exchanges = snap.Exchanges[len(snap.Exchanges)-n:]
	return Transcript(trimmed)
}
