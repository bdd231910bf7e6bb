package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// EyeContactScorer folds a session's gaze observations into one 0-100 eye
// contact score. The base score is the mean gaze score scaled to 100; each
// frame whose continuous away duration exceeds the configured threshold
// subtracts a fixed penalty.
//
// The scorer is stateless and thread-safe. An empty frame sequence yields
// the neutral default of 50.0 rather than an error, since a session with
// zero frames is valid (for example a skipped question).
type EyeContactScorer struct {
	// name is the unique identifier for this scorer instance.
	name string
	// config contains the validated penalty parameters.
	config EyeContactConfig
}

// EyeContactConfig controls the eye contact penalty rules. Configuration is
// immutable after scorer creation and validated for consistency.
type EyeContactConfig struct {
	// AwayThreshold is the continuous looking-away duration in seconds
	// beyond which a frame incurs the away penalty.
	AwayThreshold float64 `yaml:"away_threshold" json:"away_threshold" validate:"min=0"`

	// AwayPenalty is the score deduction applied per frame whose away
	// duration exceeds AwayThreshold.
	AwayPenalty float64 `yaml:"away_penalty" json:"away_penalty" validate:"min=0,max=100"`
}

// DefaultEyeContactConfig returns the reference penalty rules: a 3 second
// away threshold with a 5 point penalty per offending frame.
func DefaultEyeContactConfig() EyeContactConfig {
	return EyeContactConfig{
		AwayThreshold: 3.0,
		AwayPenalty:   5.0,
	}
}

// NewEyeContactScorer creates an EyeContactScorer with validated
// configuration. Returns ErrEmptyScorerName if name is empty, or a
// validation error if the configuration violates its constraints.
func NewEyeContactScorer(name string, config EyeContactConfig) (*EyeContactScorer, error) {
	if name == "" {
		return nil, ErrEmptyScorerName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &EyeContactScorer{name: name, config: config}, nil
}

// Name returns the unique identifier for this scorer instance.
func (s *EyeContactScorer) Name() string { return s.name }

// Score reduces the frame sequence to the eye contact score.
//
// Algorithm:
//  1. Empty input returns the neutral default 50.0.
//  2. Base score = mean(gaze score) * 100, with each gaze score clamped
//     to [0,1] at consumption so misbehaving sources cannot push the
//     result out of range.
//  3. Penalty = AwayPenalty per frame with away duration > AwayThreshold.
//  4. Result clamped to [0,100].
func (s *EyeContactScorer) Score(frames []domain.FrameObservation) float64 {
	if len(frames) == 0 {
		return 50.0
	}

	var gazeSum float64
	var penalty float64
	for _, f := range frames {
		gazeSum += domain.ClampUnit(f.EyeContact.GazeScore)
		if f.EyeContact.LookingAwayDuration > s.config.AwayThreshold {
			penalty += s.config.AwayPenalty
		}
	}

	base := gazeSum / float64(len(frames)) * 100
	return domain.Clamp100(base - penalty)
}

// Validate verifies the scorer is properly configured.
// Returns nil if the scorer is operational. Safe for concurrent use.
func (s *EyeContactScorer) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
