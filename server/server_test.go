package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campuscare/campuscare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(campuscare.New()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestChatEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/chat", `{"message":"hi there","thread_id":"t1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success      bool   `json:"success"`
		Response     string `json:"response"`
		ToolUsed     string `json:"tool_used"`
		MessageCount int    `json:"message_count"`
		ThreadID     string `json:"thread_id"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "positive_tool", body.ToolUsed)
	assert.Equal(t, 1, body.MessageCount)
	assert.Equal(t, "t1", body.ThreadID)
}

func TestChatEndpoint_DefaultsThreadID(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ThreadID string `json:"thread_id"`
	}
	decode(t, resp, &body)
	assert.NotEmpty(t, body.ThreadID)
}

func TestChatEndpoint_RejectsEmptyMessage(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/chat", `{"thread_id":"t1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatEndpoint_RejectsBadJSON(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryEndpoints(t *testing.T) {
	ts := newTestServer(t)
	postJSON(t, ts.URL+"/chat", `{"message":"hi","thread_id":"t2"}`)
	postJSON(t, ts.URL+"/chat", `{"message":"What are John's marks?","thread_id":"t2"}`)

	resp := getJSON(t, ts.URL+"/history/t2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist struct {
		ThreadID     string `json:"thread_id"`
		History      string `json:"history"`
		MessageCount int    `json:"message_count"`
	}
	decode(t, resp, &hist)
	assert.Equal(t, 2, hist.MessageCount)
	assert.Contains(t, hist.History, "Human: hi")

	resp = getJSON(t, ts.URL+"/history/t2/detailed")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detailed struct {
		TotalMessages int `json:"total_messages"`
		Conversation  []struct {
			MessageID int    `json:"message_id"`
			ToolUsed  string `json:"tool_used"`
		} `json:"conversation"`
	}
	decode(t, resp, &detailed)
	require.Len(t, detailed.Conversation, 2)
	assert.Equal(t, 2, detailed.TotalMessages)
	assert.Equal(t, "student_marks_tool", detailed.Conversation[1].ToolUsed)
}

func TestHistoryEndpoint_FreshThreadIsNotAnError(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts.URL+"/history/brand-new")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist struct {
		History      string `json:"history"`
		MessageCount int    `json:"message_count"`
	}
	decode(t, resp, &hist)
	assert.Equal(t, "", hist.History)
	assert.Equal(t, 0, hist.MessageCount)
}

func TestStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	postJSON(t, ts.URL+"/chat", `{"message":"I'm sad","thread_id":"t3"}`)

	resp := getJSON(t, ts.URL+"/stats/t3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		ThreadID     string         `json:"thread_id"`
		MessageCount int            `json:"message_count"`
		ToolsUsed    map[string]int `json:"tools_used"`
	}
	decode(t, resp, &stats)
	assert.Equal(t, "t3", stats.ThreadID)
	assert.Equal(t, 1, stats.MessageCount)
	assert.Equal(t, 1, stats.ToolsUsed["negative_tool"])
}

func TestClearAndSessionsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	postJSON(t, ts.URL+"/chat", `{"message":"hi","thread_id":"gone"}`)

	resp := postJSON(t, ts.URL+"/clear", `{"thread_id":"gone"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cleared struct {
		Cleared bool `json:"cleared"`
	}
	decode(t, resp, &cleared)
	assert.True(t, cleared.Cleared)

	resp = postJSON(t, ts.URL+"/clear", `{"thread_id":"gone"}`)
	decode(t, resp, &cleared)
	assert.False(t, cleared.Cleared, "second clear reports the session was absent")

	resp = getJSON(t, ts.URL+"/sessions")
	var sessions struct {
		Sessions []string `json:"sessions"`
	}
	decode(t, resp, &sessions)
	assert.NotContains(t, sessions.Sessions, "gone")
}

func TestIndexEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
