package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/intix/poise/infrastructure/scorers"
	"github.com/intix/poise/infrastructure/speech"
)

// EngineConfig defines the complete scoring configuration for the coaching
// engine and serves as the primary configuration entry point for the system.
// Every section carries reference defaults, so a zero-length document is a
// valid configuration.
type EngineConfig struct {
	// EyeContact controls the away-duration penalty rules for the eye
	// contact scorer.
	EyeContact scorers.EyeContactConfig `yaml:"eye_contact"`
	// Posture controls the slouch penalty for the posture scorer.
	Posture scorers.PostureConfig `yaml:"posture"`
	// Gesture controls the fidgeting ceiling and excess penalty for the
	// gesture scorer.
	Gesture scorers.GestureConfig `yaml:"gesture"`
	// Expression controls the confidence/engagement blend weights for
	// the expression scorer.
	Expression scorers.ExpressionConfig `yaml:"expression"`
	// FrameConfidence controls the per-frame blend weights used for the
	// live confidence readout.
	FrameConfidence scorers.FrameConfidenceConfig `yaml:"frame_confidence"`
	// Speech controls the pace and filler penalties for the session
	// clarity score.
	Speech speech.AnalyzerConfig `yaml:"speech"`
	// Overall holds the session-level category weights. They must sum
	// to 1.0.
	Overall scorers.OverallWeights `yaml:"overall"`
}

// DefaultEngineConfig returns the reference scoring configuration used when
// no configuration document is supplied.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		EyeContact:      scorers.DefaultEyeContactConfig(),
		Posture:         scorers.DefaultPostureConfig(),
		Gesture:         scorers.DefaultGestureConfig(),
		Expression:      scorers.DefaultExpressionConfig(),
		FrameConfidence: scorers.DefaultFrameConfidenceConfig(),
		Speech:          speech.DefaultAnalyzerConfig(),
		Overall:         scorers.DefaultOverallWeights(),
	}
}

// LoadEngineConfig parses a YAML configuration document, layering it over
// the reference defaults. Unknown fields are rejected to surface typos
// early, and the merged configuration is validated before being returned.
// An empty document yields DefaultEngineConfig.
func LoadEngineConfig(data []byte) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return EngineConfig{}, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Validate checks every configuration section by constructing the component
// that consumes it, so configuration errors surface at load time rather
// than at session end.
func (c EngineConfig) Validate() error {
	if _, err := scorers.NewEyeContactScorer("eyecontact", c.EyeContact); err != nil {
		return fmt.Errorf("eye_contact: %w", err)
	}
	if _, err := scorers.NewPostureScorer("posture", c.Posture); err != nil {
		return fmt.Errorf("posture: %w", err)
	}
	if _, err := scorers.NewGestureScorer("gesture", c.Gesture); err != nil {
		return fmt.Errorf("gesture: %w", err)
	}
	if _, err := scorers.NewExpressionScorer("expression", c.Expression); err != nil {
		return fmt.Errorf("expression: %w", err)
	}
	if _, err := scorers.NewFrameConfidenceCalculator("frameconfidence", c.FrameConfidence); err != nil {
		return fmt.Errorf("frame_confidence: %w", err)
	}
	if _, err := speech.NewAnalyzer("speech", c.Speech); err != nil {
		return fmt.Errorf("speech: %w", err)
	}
	if err := c.Overall.Validate(); err != nil {
		return fmt.Errorf("overall: %w", err)
	}
	return nil
}
