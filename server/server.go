// Package server exposes the assistant over a small JSON HTTP API. It owns
// request/response serialization only; all conversational semantics live in
// the core packages, and every chat-level failure is already degraded to a
// best-effort reply before it reaches this layer.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/campuscare/campuscare"
	"github.com/campuscare/campuscare/logging"
)

// Options holds dependency overrides passed to New.
type Options struct {
	// Logger receives request-level events (defaults to NoOp).
	Logger logging.Logger
}

// Server wraps a CampusCare assistant behind JSON endpoints.
type Server struct {
	assistant *campuscare.CampusCare
	logger    logging.Logger
}

// New constructs a Server for the given assistant.
func New(assistant *campuscare.CampusCare, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{assistant: assistant, logger: opts.Logger}
}

// Handler returns the http.Handler carrying all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /history/{id}", s.handleHistory)
	mux.HandleFunc("GET /history/{id}/detailed", s.handleDetailedHistory)
	mux.HandleFunc("GET /stats/{id}", s.handleStats)
	mux.HandleFunc("POST /clear", s.handleClear)
	mux.HandleFunc("GET /sessions", s.handleSessions)
	return mux
}

type chatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"thread_id"`
}

type clearRequest struct {
	ThreadID string `json:"thread_id"`
}

type clearResponse struct {
	Cleared  bool   `json:"cleared"`
	ThreadID string `json:"thread_id"`
}

type historyResponse struct {
	ThreadID     string `json:"thread_id"`
	History      string `json:"history"`
	MessageCount int    `json:"message_count"`
}

type sessionsResponse struct {
	Sessions []string `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "CampusCare assistant API",
		"endpoints": map[string]string{
			"POST /chat":                 "Send a message",
			"GET /history/{id}":          "Get transcript",
			"GET /history/{id}/detailed": "Get structured history",
			"GET /stats/{id}":            "Get session statistics",
			"POST /clear":                "Clear a session",
			"GET /sessions":              "List session ids",
		},
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message must not be empty"})
		return
	}

	res := s.assistant.Chat(r.Context(), req.ThreadID, req.Message)
	if !res.Success {
		s.logger.Error("chat pipeline failure", "thread_id", res.ThreadID)
		writeJSON(w, http.StatusInternalServerError, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	transcript, err := s.assistant.GetHistory(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	stats, err := s.assistant.GetStats(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{
		ThreadID:     id,
		History:      transcript,
		MessageCount: stats.MessageCount,
	})
}

func (s *Server) handleDetailedHistory(w http.ResponseWriter, r *http.Request) {
	detailed, err := s.assistant.GetDetailedHistory(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, detailed)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.assistant.GetStats(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{
		Cleared:  s.assistant.ClearSession(req.ThreadID),
		ThreadID: req.ThreadID,
	})
}

func (s *Server) handleSessions(w http.ResponseWriter, _ *http.Request) {
	ids := s.assistant.ListSessions()
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, sessionsResponse{Sessions: ids})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
