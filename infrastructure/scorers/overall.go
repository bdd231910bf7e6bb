package scorers

import (
	"fmt"

	"github.com/intix/poise/internal/domain"
)

// OverallWeights holds the fixed session-level category weights used to
// combine the five category scores into the overall confidence. Unlike the
// per-frame blend, these weights include speech clarity and must sum to 1.0.
type OverallWeights struct {
	Eye        float64 `yaml:"eye" json:"eye" validate:"gt=0,max=1"`
	Posture    float64 `yaml:"posture" json:"posture" validate:"gt=0,max=1"`
	Speech     float64 `yaml:"speech" json:"speech" validate:"gt=0,max=1"`
	Gesture    float64 `yaml:"gesture" json:"gesture" validate:"gt=0,max=1"`
	Expression float64 `yaml:"expression" json:"expression" validate:"gt=0,max=1"`
}

// DefaultOverallWeights returns the reference session weighting:
// eye 0.30, posture 0.25, speech clarity 0.15, gesture 0.15, expression 0.15.
func DefaultOverallWeights() OverallWeights {
	return OverallWeights{
		Eye:        0.30,
		Posture:    0.25,
		Speech:     0.15,
		Gesture:    0.15,
		Expression: 0.15,
	}
}

// Validate checks the weights individually and that they sum to 1.0 within
// floating-point tolerance.
func (w OverallWeights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("weight validation failed: %w", err)
	}

	sum := w.Eye + w.Posture + w.Speech + w.Gesture + w.Expression
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("overall weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Combine computes the overall session confidence as the weighted sum of
// the five category scores, clamped to [0,100]. Inputs are clamped at
// consumption so an out-of-range category score can never propagate.
func (w OverallWeights) Combine(eye, posture, speech, gesture, expression float64) float64 {
	weighted := domain.Clamp100(eye)*w.Eye +
		domain.Clamp100(posture)*w.Posture +
		domain.Clamp100(speech)*w.Speech +
		domain.Clamp100(gesture)*w.Gesture +
		domain.Clamp100(expression)*w.Expression
	return domain.Clamp100(weighted)
}
