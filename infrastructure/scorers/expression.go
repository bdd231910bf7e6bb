package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// ExpressionScorer folds a session's facial-expression observations into one
// 0-100 expression score, a weighted blend of mean confidence level and mean
// engagement score. There is no penalty rule beyond the weighting.
//
// Stateless and thread-safe. An empty frame sequence yields the neutral
// default of 60.0.
type ExpressionScorer struct {
	name   string
	config ExpressionConfig
}

// ExpressionConfig controls the confidence/engagement blend.
// The two weights must sum to 1.0.
type ExpressionConfig struct {
	// ConfidenceWeight is the weight given to mean confidence level.
	ConfidenceWeight float64 `yaml:"confidence_weight" json:"confidence_weight" validate:"min=0,max=1"`

	// EngagementWeight is the weight given to mean engagement score.
	EngagementWeight float64 `yaml:"engagement_weight" json:"engagement_weight" validate:"min=0,max=1"`
}

// DefaultExpressionConfig returns the reference blend of 0.6 confidence and
// 0.4 engagement.
func DefaultExpressionConfig() ExpressionConfig {
	return ExpressionConfig{
		ConfidenceWeight: 0.6,
		EngagementWeight: 0.4,
	}
}

// NewExpressionScorer creates an ExpressionScorer with validated
// configuration. The weights must sum to 1.0 within floating-point
// tolerance.
func NewExpressionScorer(name string, config ExpressionConfig) (*ExpressionScorer, error) {
	if name == "" {
		return nil, ErrEmptyScorerName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if sum := config.ConfidenceWeight + config.EngagementWeight; sum < 0.999 || sum > 1.001 {
		return nil, fmt.Errorf("expression weights must sum to 1.0, got %.3f", sum)
	}

	return &ExpressionScorer{name: name, config: config}, nil
}

// Name returns the unique identifier for this scorer instance.
func (s *ExpressionScorer) Name() string { return s.name }

// Score reduces the frame sequence to the expression score: empty input
// returns 60.0; otherwise
// (ConfidenceWeight*mean(confidence) + EngagementWeight*mean(engagement))*100,
// clamped to [0,100].
func (s *ExpressionScorer) Score(frames []domain.FrameObservation) float64 {
	if len(frames) == 0 {
		return 60.0
	}

	var confidenceSum float64
	var engagementSum float64
	for _, f := range frames {
		confidenceSum += domain.ClampUnit(f.Expressions.ConfidenceLevel)
		engagementSum += domain.ClampUnit(f.Expressions.EngagementScore)
	}

	n := float64(len(frames))
	blend := s.config.ConfidenceWeight*(confidenceSum/n) + s.config.EngagementWeight*(engagementSum/n)
	return domain.Clamp100(blend * 100)
}

// Validate verifies the scorer is properly configured.
func (s *ExpressionScorer) Validate() error {
	if err := validate.Struct(s.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
