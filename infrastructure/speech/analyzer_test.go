package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intix/poise/internal/domain"
)

func utterance(words int, duration float64, fillers int) domain.TranscriptionResult {
	return domain.TranscriptionResult{
		WordCount:        words,
		Duration:         duration,
		TotalFillerCount: fillers,
		WordsPerMinute:   WordsPerMinute(words, duration),
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name            string
		results         []domain.TranscriptionResult
		expectedWPM     float64
		expectedClarity float64
	}{
		{
			name:            "empty input returns neutral defaults",
			results:         nil,
			expectedWPM:     0.0,
			expectedClarity: 50.0,
		},
		{
			name: "optimal pace with no fillers scores 100",
			results: []domain.TranscriptionResult{
				utterance(140, 60.0, 0),
			},
			expectedWPM:     140.0,
			expectedClarity: 100.0,
		},
		{
			name: "pace deviation penalized at half a point per WPM",
			results: []domain.TranscriptionResult{
				utterance(180, 60.0, 0),
			},
			expectedWPM:     180.0,
			expectedClarity: 80.0,
		},
		{
			name: "pace penalty capped at fifty points",
			results: []domain.TranscriptionResult{
				utterance(20, 60.0, 0),
			},
			expectedWPM:     20.0,
			expectedClarity: 50.0,
		},
		{
			name: "filler percentage doubled as penalty",
			results: []domain.TranscriptionResult{
				utterance(140, 60.0, 14), // 10% fillers
			},
			expectedWPM:     140.0,
			expectedClarity: 80.0,
		},
		{
			name: "average pace computed over combined totals",
			results: []domain.TranscriptionResult{
				utterance(100, 60.0, 0),
				utterance(200, 60.0, 0),
			},
			// 300 words over 120 seconds
			expectedWPM:     150.0,
			expectedClarity: 95.0,
		},
		{
			name: "combined penalties clamp at zero",
			results: []domain.TranscriptionResult{
				utterance(10, 600.0, 10), // 1 WPM, 100% fillers
			},
			expectedWPM:     1.0,
			expectedClarity: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer, err := NewAnalyzer("speech", DefaultAnalyzerConfig())
			require.NoError(t, err)

			analysis := analyzer.Analyze(tt.results)
			assert.InDelta(t, tt.expectedWPM, analysis.AverageWPM, 0.0001)
			assert.InDelta(t, tt.expectedClarity, analysis.ClarityScore, 0.0001)
			assert.GreaterOrEqual(t, analysis.ClarityScore, 0.0)
			assert.LessOrEqual(t, analysis.ClarityScore, 100.0)
		})
	}
}

func TestNewAnalyzer_Validation(t *testing.T) {
	_, err := NewAnalyzer("", DefaultAnalyzerConfig())
	require.Error(t, err)

	_, err = NewAnalyzer("speech", AnalyzerConfig{OptimalWPM: 0, MaxPacePenalty: 50, FillerPenaltyFactor: 2})
	require.Error(t, err)
}
