package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// GestureScorer folds a session's hand observations into one 0-100 gesture
// score. Less fidgeting is better, so the base score inverts the mean
// fidgeting score; excessive gesturing beyond the configured ceiling incurs
// a proportional penalty.
//
// Stateless and thread-safe. An empty frame sequence yields the neutral
// default of 75.0.
type GestureScorer struct {
	name   string
	config GestureConfig
}

// GestureConfig controls the gesture penalty rules.
type GestureConfig struct {
	// GestureCeiling is the mean gesture count above which the excess
	// penalty applies. Moderate gesturing is good; excess is penalized.
	GestureCeiling float64 `yaml:"gesture_ceiling" json:"gesture_ceiling" validate:"min=0"`

	// ExcessPenalty is the deduction per unit of mean gesture count above
	// GestureCeiling.
	ExcessPenalty float64 `yaml:"excess_penalty" json:"excess_penalty" validate:"min=0,max=100"`
}

// DefaultGestureConfig returns the reference rules: penalize 2 points per
// unit of mean gesture count above 5.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		GestureCeiling: 5.0,
		ExcessPenalty:  2.0,
	}
}

// NewGestureScorer creates a GestureScorer with validated configuration.
func NewGestureScorer(name string, config GestureConfig) (*GestureScorer, error) {
	if name == "" {
		return nil, ErrEmptyScorerName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &GestureScorer{name: name, config: config}, nil
}

// Name returns the unique identifier for this scorer instance.
func (s *GestureScorer) Name() string { return s.name }

// Score reduces the frame sequence to the gesture score: empty input
// returns 75.0; otherwise (1 - mean(fidgeting))*100, minus
// ExcessPenalty*(mean gesture count - GestureCeiling) when the mean count
// exceeds the ceiling, clamped to [0,100].
func (s *GestureScorer) Score(frames []domain.FrameObservation) float64 {
	if len(frames) == 0 {
		return 75.0
	}

	var fidgetSum float64
	var gestureSum float64
	for _, f := range frames {
		fidgetSum += domain.ClampUnit(f.Gestures.FidgetingScore)
		gestureSum += float64(f.Gestures.GestureCount)
	}

	n := float64(len(frames))
	base := (1 - fidgetSum/n) * 100

	meanGestures := gestureSum / n
	if meanGestures > s.config.GestureCeiling {
		base -= (meanGestures - s.config.GestureCeiling) * s.config.ExcessPenalty
	}

	return domain.Clamp100(base)
}

// Validate verifies the scorer is properly configured.
func (s *GestureScorer) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
