package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// PostureScorer folds a session's posture observations into one 0-100
// posture score: the mean posture score scaled to 100, minus a fixed penalty
// per frame flagged as slouching.
//
// Stateless and thread-safe. An empty frame sequence yields the neutral
// default of 50.0.
type PostureScorer struct {
	name   string
	config PostureConfig
}

// PostureConfig controls the posture penalty rules.
type PostureConfig struct {
	// SlouchPenalty is the score deduction per slouch-flagged frame.
	SlouchPenalty float64 `yaml:"slouch_penalty" json:"slouch_penalty" validate:"min=0,max=100"`
}

// DefaultPostureConfig returns the reference penalty of 3 points per
// slouch-flagged frame.
func DefaultPostureConfig() PostureConfig {
	return PostureConfig{SlouchPenalty: 3.0}
}

// NewPostureScorer creates a PostureScorer with validated configuration.
func NewPostureScorer(name string, config PostureConfig) (*PostureScorer, error) {
	if name == "" {
		return nil, ErrEmptyScorerName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &PostureScorer{name: name, config: config}, nil
}

// Name returns the unique identifier for this scorer instance.
func (s *PostureScorer) Name() string { return s.name }

// Score reduces the frame sequence to the posture score: empty input
// returns 50.0; otherwise mean(posture score)*100 minus SlouchPenalty per
// slouch-flagged frame, clamped to [0,100].
func (s *PostureScorer) Score(frames []domain.FrameObservation) float64 {
	if len(frames) == 0 {
		return 50.0
	}

	var postureSum float64
	var slouchCount int
	for _, f := range frames {
		postureSum += domain.ClampUnit(f.Posture.PostureScore)
		if f.Posture.SlouchDetected {
			slouchCount++
		}
	}

	base := postureSum / float64(len(frames)) * 100
	penalty := float64(slouchCount) * s.config.SlouchPenalty
	return domain.Clamp100(base - penalty)
}

// Validate verifies the scorer is properly configured.
func (s *PostureScorer) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
