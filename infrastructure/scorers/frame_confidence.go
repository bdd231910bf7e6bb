package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// FrameConfidenceCalculator blends one frame's four observation categories
// into a single 0-100 confidence value for live display. Speech is
// intentionally excluded at frame granularity: it is utterance-scoped, so
// the weighted sum is normalized by the sum of the weights actually used.
//
// Stateless and thread-safe.
type FrameConfidenceCalculator struct {
	name   string
	config FrameConfidenceConfig
}

// FrameConfidenceConfig holds the per-category weights for the per-frame
// blend. The weights need not sum to 1.0; the result is normalized by their
// sum.
type FrameConfidenceConfig struct {
	EyeWeight        float64 `yaml:"eye_weight" json:"eye_weight" validate:"gt=0,max=1"`
	PostureWeight    float64 `yaml:"posture_weight" json:"posture_weight" validate:"gt=0,max=1"`
	GestureWeight    float64 `yaml:"gesture_weight" json:"gesture_weight" validate:"gt=0,max=1"`
	ExpressionWeight float64 `yaml:"expression_weight" json:"expression_weight" validate:"gt=0,max=1"`
}

// DefaultFrameConfidenceConfig returns the reference per-frame weights:
// eye 0.30, posture 0.25, gesture 0.15, expression 0.15 (normalized by 0.85).
func DefaultFrameConfidenceConfig() FrameConfidenceConfig {
	return FrameConfidenceConfig{
		EyeWeight:        0.30,
		PostureWeight:    0.25,
		GestureWeight:    0.15,
		ExpressionWeight: 0.15,
	}
}

// NewFrameConfidenceCalculator creates a FrameConfidenceCalculator with
// validated configuration.
func NewFrameConfidenceCalculator(name string, config FrameConfidenceConfig) (*FrameConfidenceCalculator, error) {
	if name == "" {
		return nil, ErrEmptyScorerName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &FrameConfidenceCalculator{name: name, config: config}, nil
}

// Name returns the unique identifier for this calculator instance.
func (c *FrameConfidenceCalculator) Name() string { return c.name }

// Confidence computes the blended 0-100 confidence for a single frame.
//
// Transforms before weighting: eye = gaze*100, posture = posture*100,
// gesture = (1-fidgeting)*100 (less fidgeting is better),
// expression = confidence level*100. The weighted sum is divided by the sum
// of the weights used and clamped to [0,100].
func (c *FrameConfidenceCalculator) Confidence(obs domain.FrameObservation) float64 {
	eyeScore := domain.ClampUnit(obs.EyeContact.GazeScore) * 100
	postureScore := domain.ClampUnit(obs.Posture.PostureScore) * 100
	gestureScore := (1 - domain.ClampUnit(obs.Gestures.FidgetingScore)) * 100
	expressionScore := domain.ClampUnit(obs.Expressions.ConfidenceLevel) * 100

	totalWeight := c.config.EyeWeight + c.config.PostureWeight +
		c.config.GestureWeight + c.config.ExpressionWeight

	blended := (eyeScore*c.config.EyeWeight +
		postureScore*c.config.PostureWeight +
		gestureScore*c.config.GestureWeight +
		expressionScore*c.config.ExpressionWeight) / totalWeight

	return domain.Clamp100(blended)
}

// Validate verifies the calculator is properly configured.
func (c *FrameConfidenceCalculator) Validate() error {
	if err := validate.Struct(c.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
