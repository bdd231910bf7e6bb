package domain

import "time"

// SessionSummary is the archival record appended to the session history when
// a session ends. It is immutable after creation; history ordering is
// insertion order.
type SessionSummary struct {
	// SessionID is the caller-supplied unique identifier for the session.
	SessionID string `json:"session_id"`

	// Timestamp is the server-assigned session end time.
	Timestamp time.Time `json:"timestamp"`

	// Duration is the total session length in seconds.
	Duration float64 `json:"duration"`

	// OverallConfidence is the session's headline 0-100 score.
	OverallConfidence float64 `json:"overall_confidence"`

	// QuestionsAnswered counts the questions answered during the session.
	QuestionsAnswered int `json:"questions_answered"`

	// KeyMetrics maps a subset of category names to their scores for
	// compact display in history listings.
	KeyMetrics map[string]float64 `json:"key_metrics"`
}

// HistoryStats holds the aggregate statistics computed over the session
// history log.
type HistoryStats struct {
	// TotalSessions is the number of recorded sessions.
	TotalSessions int `json:"total_sessions"`

	// AverageConfidence is the mean overall confidence across all
	// sessions, 0.0 when the history is empty.
	AverageConfidence float64 `json:"average_confidence"`

	// ImprovementTrend is the percentage change between the average
	// confidence of the chronological first and second halves of the
	// history. Zero when fewer than two sessions exist or the first-half
	// average is zero.
	ImprovementTrend float64 `json:"improvement_trend"`
}

// Feedback is the narrative output of the feedback generator: prose analysis
// plus structured strength, improvement, and recommendation lists. The
// scoring core treats the content as opaque.
type Feedback struct {
	DetailedFeedback    string   `json:"detailed_feedback"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Recommendations     []string `json:"recommendations"`
}

// Question is one generated interview question with coaching hints.
type Question struct {
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Tips       []string `json:"tips"`
}

// SessionReport combines the numeric session metrics with the narrative
// feedback into the final report returned to the caller at session end.
type SessionReport struct {
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Duration  float64        `json:"duration"`
	Metrics   SessionMetrics `json:"metrics"`

	DetailedFeedback    string   `json:"detailed_feedback"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Recommendations     []string `json:"recommendations"`
}
