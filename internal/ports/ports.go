// Package ports defines the interfaces that form the contract between the
// scoring core and the infrastructure layer. These interfaces enable
// dependency inversion and keep the core testable without external services.
package ports

import (
	"context"
	"time"

	"github.com/intix/poise/internal/domain"
)

// FeedbackGenerator produces narrative feedback for a completed session from
// its aggregated metrics, raw transcripts, and the questions asked.
//
// Implementations must degrade rather than fail: when the underlying
// collaborator is unavailable or returns an unusable response, they return a
// documented canned Feedback so a session always completes with a report.
// One best-effort call per session end; no retries.
type FeedbackGenerator interface {
	// GenerateSessionFeedback requests session feedback. The returned
	// Feedback is always usable; the error reports a degraded generation
	// for logging purposes only and never aborts the session-end flow.
	GenerateSessionFeedback(
		ctx context.Context,
		metrics domain.SessionMetrics,
		transcripts []string,
		questions []string,
	) (domain.Feedback, error)
}

// QuestionGenerator produces interview questions for a job role and
// difficulty, avoiding repeats of previously asked questions. Like
// FeedbackGenerator it degrades to a canned question on collaborator failure.
type QuestionGenerator interface {
	GenerateQuestion(
		ctx context.Context,
		jobRole, difficulty string,
		previousQuestions []string,
	) (domain.Question, error)
}

// AnswerEvaluator scores one interview answer against its question,
// degrading to a canned evaluation on collaborator failure.
type AnswerEvaluator interface {
	EvaluateAnswer(
		ctx context.Context,
		question, answer, jobRole string,
	) (domain.AnswerEvaluation, error)
}

// CompletionClient is the minimal text-completion surface the feedback and
// question generators need from a language-model provider.
type CompletionClient interface {
	// Complete sends a prompt and returns the generated text.
	// The options map carries provider-specific settings such as
	// "temperature", "max_tokens", or "system".
	Complete(ctx context.Context, prompt string, options map[string]any) (string, error)

	// GetModel returns the model identifier used by this client,
	// for logging and debugging.
	GetModel() string
}

// MetricsCollector abstracts operational metrics so the scoring core does
// not depend on a concrete observability backend.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a distribution metric.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
