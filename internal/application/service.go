package application

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/intix/poise/infrastructure/scorers"
	"github.com/intix/poise/infrastructure/speech"
	"github.com/intix/poise/internal/domain"
	"github.com/intix/poise/internal/ports"
)

// CoachService orchestrates the session lifecycle: it owns the session
// registry, runs aggregation and feedback generation at session end, and
// records completed sessions into the history log. It is the single entry
// point the transport layer talks to.
//
// Safe for concurrent use across sessions.
type CoachService struct {
	registry  *SessionRegistry
	agg       *Aggregator
	history   *HistoryTracker
	feedback  ports.FeedbackGenerator
	questions ports.QuestionGenerator

	metrics ports.MetricsCollector
	logger  zerolog.Logger
	clock   func() time.Time
}

// NewCoachService wires the session lifecycle components together. The
// feedback and question generators are required; the metrics collector
// may be nil.
func NewCoachService(
	cfg EngineConfig,
	feedback ports.FeedbackGenerator,
	questions ports.QuestionGenerator,
	metrics ports.MetricsCollector,
	logger zerolog.Logger,
) (*CoachService, error) {
	agg, err := NewAggregator(cfg, metrics)
	if err != nil {
		return nil, err
	}

	confidence, err := scorers.NewFrameConfidenceCalculator("frameconfidence", cfg.FrameConfidence)
	if err != nil {
		return nil, err
	}

	return &CoachService{
		registry:  NewSessionRegistry(confidence),
		agg:       agg,
		history:   NewHistoryTracker(),
		feedback:  feedback,
		questions: questions,
		metrics:   metrics,
		logger:    logger.With().Str("component", "coach_service").Logger(),
		clock:     time.Now,
	}, nil
}

// StartSession registers a new active session under the given id.
func (s *CoachService) StartSession(sessionID string) error {
	if err := s.registry.Start(sessionID); err != nil {
		return err
	}

	s.logger.Info().Str("session_id", sessionID).Msg("session started")
	if s.metrics != nil {
		s.metrics.RecordCounter("sessions_started", 1, nil)
		s.metrics.RecordGauge("sessions_active", float64(s.registry.ActiveCount()), nil)
	}
	return nil
}

// ProcessFrame stamps and stores one frame observation for the session,
// returning the stamped frame with its away duration and live confidence
// filled in.
func (s *CoachService) ProcessFrame(sessionID string, obs domain.FrameObservation) (domain.FrameObservation, error) {
	stamped, err := s.registry.AddFrame(sessionID, obs)
	if err != nil {
		return domain.FrameObservation{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordCounter("frames_processed", 1, nil)
	}
	return stamped, nil
}

// ProcessTranscript analyzes one answer transcript and stores the
// measurement in the session. A non-positive duration means the capture
// layer could not time the utterance, so the duration is estimated from
// the word count instead.
func (s *CoachService) ProcessTranscript(sessionID, text string, duration float64) (domain.TranscriptionResult, error) {
	var result domain.TranscriptionResult
	if duration > 0 {
		result = speech.AnalyzeTranscript(text, duration)
	} else {
		result = speech.AnalyzeTranscriptEstimated(text)
	}

	if err := s.registry.AddTranscription(sessionID, text, result); err != nil {
		return domain.TranscriptionResult{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordCounter("transcripts_processed", 1, nil)
		s.metrics.RecordHistogram("transcript_wpm", result.WordsPerMinute, nil)
	}
	return result, nil
}

// NextQuestion generates an interview question for the session, feeding the
// generator the questions already asked so repeats are avoided, and records
// the new question in the session state. Question generation degrades to a
// canned question rather than failing, so the only error paths are session
// lookup errors.
func (s *CoachService) NextQuestion(ctx context.Context, sessionID, jobRole, difficulty string) (domain.Question, error) {
	previous, err := s.registry.Questions(sessionID)
	if err != nil {
		return domain.Question{}, err
	}

	question, genErr := s.questions.GenerateQuestion(ctx, jobRole, difficulty, previous)
	if genErr != nil {
		s.logger.Warn().Err(genErr).
			Str("session_id", sessionID).
			Msg("question generation degraded to fallback")
	}

	if err := s.registry.AddQuestion(sessionID, question.Question); err != nil {
		return domain.Question{}, err
	}
	return question, nil
}

// EndSession closes the session and produces its final report: the
// aggregated metrics, the narrative feedback, and the history record. The
// feedback generator degrades internally, so once the session id resolves
// the report is always produced.
func (s *CoachService) EndSession(ctx context.Context, sessionID string) (domain.SessionReport, error) {
	snapshot, err := s.registry.End(sessionID)
	if err != nil {
		return domain.SessionReport{}, err
	}

	metrics := s.agg.Aggregate(ctx, snapshot.Frames, snapshot.Transcriptions)

	feedback, fbErr := s.feedback.GenerateSessionFeedback(ctx, metrics, snapshot.Transcripts, snapshot.Questions)
	if fbErr != nil {
		s.logger.Warn().Err(fbErr).
			Str("session_id", sessionID).
			Msg("feedback generation degraded to fallback")
	}

	endedAt := s.clock()
	s.history.Record(domain.SessionSummary{
		SessionID:         sessionID,
		Timestamp:         endedAt,
		Duration:          snapshot.Duration,
		OverallConfidence: metrics.OverallConfidence,
		QuestionsAnswered: len(snapshot.Transcriptions),
		KeyMetrics: map[string]float64{
			"eye_contact":    metrics.EyeContactPercentage,
			"posture":        metrics.PostureScore,
			"speech_clarity": metrics.SpeechClarityScore,
		},
	})

	s.logger.Info().
		Str("session_id", sessionID).
		Float64("overall_confidence", metrics.OverallConfidence).
		Int("frames", len(snapshot.Frames)).
		Int("transcripts", len(snapshot.Transcriptions)).
		Msg("session ended")
	if s.metrics != nil {
		s.metrics.RecordCounter("sessions_ended", 1, nil)
		s.metrics.RecordGauge("sessions_active", float64(s.registry.ActiveCount()), nil)
	}

	return domain.SessionReport{
		SessionID:           sessionID,
		Timestamp:           endedAt,
		Duration:            snapshot.Duration,
		Metrics:             metrics,
		DetailedFeedback:    feedback.DetailedFeedback,
		Strengths:           feedback.Strengths,
		AreasForImprovement: feedback.AreasForImprovement,
		Recommendations:     feedback.Recommendations,
	}, nil
}

// History returns the recorded session summaries in completion order.
func (s *CoachService) History() []domain.SessionSummary {
	return s.history.Sessions()
}

// HistoryStatistics returns the aggregate statistics over the history log.
func (s *CoachService) HistoryStatistics() domain.HistoryStats {
	return s.history.Statistics()
}
