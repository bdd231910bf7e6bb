package scorers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intix/poise/internal/domain"
)

func gestureFrame(fidgeting float64, count int) domain.FrameObservation {
	return domain.FrameObservation{
		Gestures: domain.Gestures{
			FidgetingScore: fidgeting,
			GestureCount:   count,
		},
	}
}

func TestGestureScorer_Score(t *testing.T) {
	tests := []struct {
		name     string
		config   GestureConfig
		frames   []domain.FrameObservation
		expected float64
	}{
		{
			name:     "empty input returns neutral default",
			config:   DefaultGestureConfig(),
			frames:   nil,
			expected: 75.0,
		},
		{
			name:   "stillness scores highest",
			config: DefaultGestureConfig(),
			frames: []domain.FrameObservation{
				gestureFrame(0.0, 1),
				gestureFrame(0.0, 1),
			},
			expected: 100.0,
		},
		{
			name:   "fidgeting lowers the inverted base",
			config: DefaultGestureConfig(),
			frames: []domain.FrameObservation{
				gestureFrame(0.2, 1),
				gestureFrame(0.4, 1),
			},
			// (1 - 0.3) * 100
			expected: 70.0,
		},
		{
			name:   "mean gesture count over ceiling is penalized",
			config: DefaultGestureConfig(),
			frames: []domain.FrameObservation{
				gestureFrame(0.0, 8),
				gestureFrame(0.0, 6),
			},
			// mean count 7, (7-5)*2 = 4 point penalty
			expected: 96.0,
		},
		{
			name:   "count at ceiling incurs no penalty",
			config: DefaultGestureConfig(),
			frames: []domain.FrameObservation{
				gestureFrame(0.0, 5),
			},
			expected: 100.0,
		},
		{
			name:   "constant movement clamps to zero",
			config: GestureConfig{GestureCeiling: 5, ExcessPenalty: 10},
			frames: []domain.FrameObservation{
				gestureFrame(1.0, 20),
			},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer, err := NewGestureScorer("gesture", tt.config)
			require.NoError(t, err)

			score := scorer.Score(tt.frames)
			assert.InDelta(t, tt.expected, score, 0.0001)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestNewGestureScorer_Validation(t *testing.T) {
	_, err := NewGestureScorer("", DefaultGestureConfig())
	require.ErrorIs(t, err, ErrEmptyScorerName)

	_, err = NewGestureScorer("gesture", GestureConfig{GestureCeiling: -1, ExcessPenalty: 2})
	require.Error(t, err)
}
