package application

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/intix/poise/infrastructure/scorers"
	"github.com/intix/poise/infrastructure/speech"
	"github.com/intix/poise/internal/domain"
	"github.com/intix/poise/internal/ports"
)

// Aggregator folds a completed session's observation and transcription
// streams into the final SessionMetrics. The four visual scorers run
// concurrently since they walk the same immutable frame slice independently;
// speech analysis and the overall blend follow once all category scores
// are in.
//
// An Aggregator is immutable after construction and safe for use across
// concurrent session-end calls.
type Aggregator struct {
	eye        *scorers.EyeContactScorer
	posture    *scorers.PostureScorer
	gesture    *scorers.GestureScorer
	expression *scorers.ExpressionScorer
	speech     *speech.Analyzer
	weights    scorers.OverallWeights

	metrics ports.MetricsCollector
}

// NewAggregator builds an Aggregator from a validated engine configuration.
// The metrics collector may be nil, in which case aggregation timing is not
// recorded.
func NewAggregator(cfg EngineConfig, metrics ports.MetricsCollector) (*Aggregator, error) {
	eye, err := scorers.NewEyeContactScorer("eyecontact", cfg.EyeContact)
	if err != nil {
		return nil, fmt.Errorf("failed to create eye contact scorer: %w", err)
	}
	posture, err := scorers.NewPostureScorer("posture", cfg.Posture)
	if err != nil {
		return nil, fmt.Errorf("failed to create posture scorer: %w", err)
	}
	gesture, err := scorers.NewGestureScorer("gesture", cfg.Gesture)
	if err != nil {
		return nil, fmt.Errorf("failed to create gesture scorer: %w", err)
	}
	expression, err := scorers.NewExpressionScorer("expression", cfg.Expression)
	if err != nil {
		return nil, fmt.Errorf("failed to create expression scorer: %w", err)
	}
	analyzer, err := speech.NewAnalyzer("speech", cfg.Speech)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech analyzer: %w", err)
	}
	if err := cfg.Overall.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overall weights: %w", err)
	}

	return &Aggregator{
		eye:        eye,
		posture:    posture,
		gesture:    gesture,
		expression: expression,
		speech:     analyzer,
		weights:    cfg.Overall,
		metrics:    metrics,
	}, nil
}

// Aggregate computes the session metrics from the frame and transcription
// streams. The input slices are read-only snapshots; callers must not
// mutate them while aggregation runs. Empty streams are valid and resolve
// to each category's documented neutral default, so the call itself cannot
// fail on session content.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	frames []domain.FrameObservation,
	transcriptions []domain.TranscriptionResult,
) domain.SessionMetrics {
	start := time.Now()

	var eyeScore, postureScore, gestureScore, expressionScore float64

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		eyeScore = a.eye.Score(frames)
		return nil
	})
	g.Go(func() error {
		postureScore = a.posture.Score(frames)
		return nil
	})
	g.Go(func() error {
		gestureScore = a.gesture.Score(frames)
		return nil
	})
	g.Go(func() error {
		expressionScore = a.expression.Score(frames)
		return nil
	})
	// Scorers are pure functions over immutable input and never return
	// errors, so Wait cannot fail; it only synchronizes the fan-out.
	_ = g.Wait()

	speechAnalysis := a.speech.Analyze(transcriptions)

	overall := a.weights.Combine(
		eyeScore,
		postureScore,
		speechAnalysis.ClarityScore,
		gestureScore,
		expressionScore,
	)

	result := domain.SessionMetrics{
		EyeContactPercentage: eyeScore,
		PostureScore:         postureScore,
		ExpressionConfidence: expressionScore,
		GestureScore:         gestureScore,
		SpeechClarityScore:   speechAnalysis.ClarityScore,
		FillerWordCount:      speechAnalysis.TotalFillerCount,
		SpeechPace:           speechAnalysis.AverageWPM,
		OverallConfidence:    overall,
	}

	if a.metrics != nil {
		a.metrics.RecordLatency("session_aggregate", time.Since(start), nil)
		a.metrics.RecordHistogram("session_overall_confidence", overall, nil)
		a.metrics.RecordGauge("session_frame_count", float64(len(frames)), nil)
	}

	return result
}
