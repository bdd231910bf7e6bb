package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsPerMinute(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		duration float64
		expected float64
	}{
		{"one hundred forty WPM", 140, 60.0, 140.0},
		{"half minute", 70, 30.0, 140.0},
		{"zero duration returns zero", 100, 0.0, 0.0},
		{"negative duration returns zero", 100, -5.0, 0.0},
		{"zero words", 0, 60.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WordsPerMinute(tt.words, tt.duration), 0.0001)
		})
	}
}

func TestAnalyzeTranscript(t *testing.T) {
	result := AnalyzeTranscript("um the project was like really hard", 12.0)

	assert.Equal(t, 7, result.WordCount)
	assert.InDelta(t, 12.0, result.Duration, 0.0001)
	assert.Equal(t, 2, result.TotalFillerCount)
	assert.InDelta(t, 35.0, result.WordsPerMinute, 0.0001)
}

func TestAnalyzeTranscriptEstimated(t *testing.T) {
	// Ten words at 2.5 words/second estimates a 4 second utterance,
	// which works out to 150 WPM.
	result := AnalyzeTranscriptEstimated("one two three four five six seven eight nine ten")

	assert.Equal(t, 10, result.WordCount)
	assert.InDelta(t, 4.0, result.Duration, 0.0001)
	assert.InDelta(t, 150.0, result.WordsPerMinute, 0.0001)
}

func TestAnalyzeTranscriptEmpty(t *testing.T) {
	result := AnalyzeTranscriptEstimated("")

	assert.Equal(t, 0, result.WordCount)
	assert.InDelta(t, 0.0, result.Duration, 0.0001)
	assert.InDelta(t, 0.0, result.WordsPerMinute, 0.0001)
	assert.Equal(t, 0, result.TotalFillerCount)
}
