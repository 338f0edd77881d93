package core

import (
	"sync"
	"testing"
	"time"
)

func TestSession_AppendExchangeKeepsAlignment(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession("s1", now)

	s.AppendExchange("hi", "hello!", ToolPositive, now.Add(time.Second))
	s.AppendExchange("i feel sad", "I hear you", ToolNegative, now.Add(2*time.Second))

	snap := s.Snapshot()
	if len(snap.Exchanges) != 2 || len(snap.ToolHistory) != 2 {
		t.Fatalf("expected aligned lengths of 2, got %d exchanges / %d tools",
			len(snap.Exchanges), len(snap.ToolHistory))
	}
	if snap.ToolHistory[1] != ToolNegative {
		t.Errorf("expected second tool %s, got %s", ToolNegative, snap.ToolHistory[1])
	}
	if snap.Created != now {
		t.Errorf("Created should not move on append")
	}
	if !snap.LastActive.Equal(now.Add(2 * time.Second)) {
		t.Errorf("LastActive should track the latest append")
	}
}

func TestSession_SnapshotIsIndependent(t *testing.T) {
	s := NewSession("s2", time.Now())
	s.AppendExchange("hi", "hello!", ToolPositive, time.Now())

	snap := s.Snapshot()
	snap.Exchanges[0].BotResponse = "changed"
	snap.ToolHistory[0] = ToolCrisis
	snap.ToolUsage[ToolCrisis] = 99

	fresh := s.Snapshot()
	if fresh.Exchanges[0].BotResponse != "hello!" {
		t.Error("snapshot mutation leaked into session exchanges")
	}
	if fresh.ToolHistory[0] != ToolPositive {
		t.Error("snapshot mutation leaked into tool history")
	}
	if fresh.ToolUsage[ToolCrisis] != 0 {
		t.Error("snapshot mutation leaked into usage counters")
	}
}

func TestSession_ConcurrentAppendsHoldInvariants(t *testing.T) {
	s := NewSession("s3", time.Now())

	const writers = 8
	const perWriter = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				s.AppendExchange("q", "a", ToolPositive, time.Now())
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	want := writers * perWriter
	if len(snap.Exchanges) != want {
		t.Fatalf("expected %d exchanges, got %d", want, len(snap.Exchanges))
	}
	if len(snap.ToolHistory) != want {
		t.Fatalf("tool history desynchronized: %d vs %d exchanges", len(snap.ToolHistory), want)
	}
	total := 0
	for _, n := range snap.ToolUsage {
		total += n
	}
	if total != want {
		t.Fatalf("usage counters sum %d, want %d", total, want)
	}
}

func TestSession_StatsProjection(t *testing.T) {
	now := time.Now()
	s := NewSession("s4", now)
	s.AppendExchange("hi", "hello!", ToolPositive, now)
	s.AppendExchange("gpa?", "report", ToolStudentMarks, now)

	st := s.Stats()
	if st.ThreadID != "s4" || st.MessageCount != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if st.ToolsUsed[ToolPositive] != 1 || st.ToolsUsed[ToolStudentMarks] != 1 {
		t.Errorf("unexpected usage counters: %+v", st.ToolsUsed)
	}
}
