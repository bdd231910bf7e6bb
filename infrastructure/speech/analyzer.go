package speech

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/intix/poise/internal/domain"
)

var validate = validator.New()

// Analyzer aggregates a session's TranscriptionResults into session-wide
// speech metrics and the 0-100 clarity score. The clarity score penalizes
// deviation from an optimal speaking pace and the session's filler density.
//
// Stateless and thread-safe. An empty transcription sequence yields the
// neutral defaults: clarity 50.0, average pace 0.0.
type Analyzer struct {
	name   string
	config AnalyzerConfig
}

// AnalyzerConfig controls the clarity scoring rules.
type AnalyzerConfig struct {
	// OptimalWPM is the speaking pace that incurs no pace penalty.
	OptimalWPM float64 `yaml:"optimal_wpm" json:"optimal_wpm" validate:"gt=0"`

	// MaxPacePenalty caps the deduction for pace deviation.
	MaxPacePenalty float64 `yaml:"max_pace_penalty" json:"max_pace_penalty" validate:"min=0,max=100"`

	// FillerPenaltyFactor multiplies the filler percentage to produce the
	// filler deduction.
	FillerPenaltyFactor float64 `yaml:"filler_penalty_factor" json:"filler_penalty_factor" validate:"min=0"`
}

// DefaultAnalyzerConfig returns the reference clarity rules: optimal pace
// 140 WPM, pace penalty capped at 50 points, filler percentage doubled.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		OptimalWPM:          140.0,
		MaxPacePenalty:      50.0,
		FillerPenaltyFactor: 2.0,
	}
}

// NewAnalyzer creates an Analyzer with validated configuration.
func NewAnalyzer(name string, config AnalyzerConfig) (*Analyzer, error) {
	if name == "" {
		return nil, fmt.Errorf("analyzer name cannot be empty")
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &Analyzer{name: name, config: config}, nil
}

// Name returns the unique identifier for this analyzer instance.
func (a *Analyzer) Name() string { return a.name }

// Analyze folds the transcription sequence into session speech metrics.
//
// Totals are summed across utterances; the average pace is computed over
// the combined word count and duration (not a mean of per-utterance paces).
// Clarity = clamp(paceScore - fillerPercentage*FillerPenaltyFactor, 0, 100)
// where paceScore = 100 - min(MaxPacePenalty, |averageWPM-OptimalWPM|/2).
// Empty input yields clarity 50.0 and average pace 0.0.
func (a *Analyzer) Analyze(results []domain.TranscriptionResult) domain.SpeechAnalysis {
	if len(results) == 0 {
		return domain.SpeechAnalysis{
			TotalWords:       0,
			AverageWPM:       0.0,
			TotalFillerCount: 0,
			FillerPercentage: 0.0,
			ClarityScore:     50.0,
		}
	}

	var totalWords, totalFillers int
	var totalDuration float64
	for _, r := range results {
		totalWords += r.WordCount
		totalDuration += r.Duration
		totalFillers += r.TotalFillerCount
	}

	averageWPM := WordsPerMinute(totalWords, totalDuration)

	fillerPercentage := 0.0
	if totalWords > 0 {
		fillerPercentage = float64(totalFillers) / float64(totalWords) * 100
	}

	paceScore := 100 - math.Min(a.config.MaxPacePenalty, math.Abs(averageWPM-a.config.OptimalWPM)/2)
	clarity := domain.Clamp100(paceScore - fillerPercentage*a.config.FillerPenaltyFactor)

	return domain.SpeechAnalysis{
		TotalWords:       totalWords,
		AverageWPM:       averageWPM,
		TotalFillerCount: totalFillers,
		FillerPercentage: fillerPercentage,
		ClarityScore:     clarity,
	}
}

// Validate verifies the analyzer is properly configured.
func (a *Analyzer) Validate() error {
	if err := validate.Struct(a.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
