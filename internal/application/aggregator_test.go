package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intix/poise/internal/domain"
)

func TestAggregator_EmptySessionUsesDefaults(t *testing.T) {
	agg, err := NewAggregator(DefaultEngineConfig(), nil)
	require.NoError(t, err)

	metrics := agg.Aggregate(context.Background(), nil, nil)

	assert.InDelta(t, 50.0, metrics.EyeContactPercentage, 0.0001)
	assert.InDelta(t, 50.0, metrics.PostureScore, 0.0001)
	assert.InDelta(t, 75.0, metrics.GestureScore, 0.0001)
	assert.InDelta(t, 60.0, metrics.ExpressionConfidence, 0.0001)
	assert.InDelta(t, 50.0, metrics.SpeechClarityScore, 0.0001)
	assert.Equal(t, 0, metrics.FillerWordCount)
	assert.InDelta(t, 0.0, metrics.SpeechPace, 0.0001)

	// 50*.30 + 50*.25 + 50*.15 + 75*.15 + 60*.15
	assert.InDelta(t, 55.25, metrics.OverallConfidence, 0.0001)
}

func TestAggregator_BlendsAllCategories(t *testing.T) {
	agg, err := NewAggregator(DefaultEngineConfig(), nil)
	require.NoError(t, err)

	frames := []domain.FrameObservation{
		{
			EyeContact:  domain.EyeContact{GazeScore: 0.8},
			Posture:     domain.Posture{PostureScore: 0.7},
			Gestures:    domain.Gestures{FidgetingScore: 0.25, GestureCount: 3},
			Expressions: domain.Expressions{ConfidenceLevel: 0.75, EngagementScore: 0.5},
		},
		{
			EyeContact:  domain.EyeContact{GazeScore: 0.8},
			Posture:     domain.Posture{PostureScore: 0.7},
			Gestures:    domain.Gestures{FidgetingScore: 0.25, GestureCount: 3},
			Expressions: domain.Expressions{ConfidenceLevel: 0.75, EngagementScore: 0.5},
		},
	}
	// 180 WPM lands 40 over optimal: clarity 100 - 20 = 80.
	transcriptions := []domain.TranscriptionResult{
		{WordCount: 180, Duration: 60, WordsPerMinute: 180},
	}

	metrics := agg.Aggregate(context.Background(), frames, transcriptions)

	assert.InDelta(t, 80.0, metrics.EyeContactPercentage, 0.0001)
	assert.InDelta(t, 70.0, metrics.PostureScore, 0.0001)
	assert.InDelta(t, 75.0, metrics.GestureScore, 0.0001)
	assert.InDelta(t, 65.0, metrics.ExpressionConfidence, 0.0001)
	assert.InDelta(t, 80.0, metrics.SpeechClarityScore, 0.0001)
	assert.InDelta(t, 180.0, metrics.SpeechPace, 0.0001)

	// 80*.30 + 70*.25 + 80*.15 + 75*.15 + 65*.15
	assert.InDelta(t, 74.5, metrics.OverallConfidence, 0.0001)
}

func TestNewAggregator_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.Overall.Eye = 0.5

	_, err := NewAggregator(cfg, nil)
	assert.Error(t, err)
}
