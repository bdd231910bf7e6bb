// Package httpapi exposes the coaching engine over a JSON HTTP API. It is
// thin plumbing: request decoding, session-id routing, and response
// encoding, with all behavior delegated to the application service.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/intix/poise/internal/application"
	"github.com/intix/poise/internal/domain"
	"github.com/intix/poise/internal/ports"
)

// Server routes API requests to the coach service.
type Server struct {
	service   *application.CoachService
	evaluator ports.AnswerEvaluator
	logger    zerolog.Logger
	server    *http.Server
}

// NewServer creates the API server. The evaluator may be nil, in which
// case the answer evaluation endpoint reports the feature unavailable.
func NewServer(addr string, service *application.CoachService, evaluator ports.AnswerEvaluator, logger zerolog.Logger) *Server {
	s := &Server{
		service:   service,
		evaluator: evaluator,
		logger:    logger.With().Str("component", "httpapi").Logger(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/sessions/{id}/start", s.handleStartSession)
	mux.HandleFunc("POST /api/sessions/{id}/frames", s.handleAddFrame)
	mux.HandleFunc("POST /api/sessions/{id}/transcripts", s.handleAddTranscript)
	mux.HandleFunc("POST /api/sessions/{id}/questions", s.handleNextQuestion)
	mux.HandleFunc("POST /api/sessions/{id}/end", s.handleEndSession)
	mux.HandleFunc("GET /api/sessions/history", s.handleHistory)
	mux.HandleFunc("POST /api/evaluate-answer", s.handleEvaluateAnswer)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Handler returns the route handler, used directly in tests.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Start serves in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("starting API server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("API server error")
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down API server")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"scoring_engine":     "active",
			"feedback_generator": "active",
		},
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if err := s.service.StartSession(sessionID); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": sessionID})
}

func (s *Server) handleAddFrame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		domain.FrameObservation
		// AnalysisFailed marks a frame the capture layer could not
		// analyze; the neutral default observation is substituted.
		AnalysisFailed bool `json:"analysis_failed"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	obs := req.FrameObservation
	if req.AnalysisFailed {
		obs = domain.DefaultFrameObservation(req.Timestamp)
	}

	stamped, err := s.service.ProcessFrame(r.PathValue("id"), obs)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stamped)
}

func (s *Server) handleAddTranscript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string  `json:"text"`
		Duration float64 `json:"duration"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.service.ProcessTranscript(r.PathValue("id"), req.Text, req.Duration)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobRole    string `json:"job_role"`
		Difficulty string `json:"difficulty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.JobRole == "" {
		req.JobRole = "General"
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	question, err := s.service.NextQuestion(r.Context(), r.PathValue("id"), req.JobRole, req.Difficulty)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.EndSession(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessions := s.service.History()
	stats := s.service.HistoryStatistics()

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions":           sessions,
		"total_sessions":     stats.TotalSessions,
		"average_confidence": stats.AverageConfidence,
		"improvement_trend":  stats.ImprovementTrend,
	})
}

func (s *Server) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	if s.evaluator == nil {
		writeError(w, http.StatusServiceUnavailable, "answer evaluation not configured")
		return
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		JobRole  string `json:"job_role"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Question == "" || req.Answer == "" {
		writeError(w, http.StatusBadRequest, "question and answer are required")
		return
	}
	if req.JobRole == "" {
		req.JobRole = "General"
	}

	evaluation, err := s.evaluator.EvaluateAnswer(r.Context(), req.Question, req.Answer, req.JobRole)
	if err != nil {
		// Evaluation degrades to a canned result; the error is log-only.
		s.logger.Warn().Err(err).Msg("answer evaluation degraded to fallback")
	}
	writeJSON(w, http.StatusOK, evaluation)
}

// writeServiceError maps domain errors to HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownSession):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSessionExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptySessionID):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
