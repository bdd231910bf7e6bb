package speech

import (
	"strings"

	"github.com/intix/poise/internal/domain"
)

// estimatedWordsPerSecond approximates speaking speed (~150 WPM) when no
// measured utterance duration is available from the transcription source.
const estimatedWordsPerSecond = 2.5

// AnalyzeTranscript derives a TranscriptionResult from a raw transcript and
// its measured duration in seconds: word count via whitespace split, filler
// counts via the detector, and pace via WordsPerMinute.
func AnalyzeTranscript(text string, durationSeconds float64) domain.TranscriptionResult {
	wordCount := len(strings.Fields(text))
	fillers := DetectFillerWords(text)

	return domain.TranscriptionResult{
		WordCount:        wordCount,
		Duration:         durationSeconds,
		TotalFillerCount: fillers.TotalFillerCount,
		WordsPerMinute:   WordsPerMinute(wordCount, durationSeconds),
	}
}

// AnalyzeTranscriptEstimated derives a TranscriptionResult when the
// transcription source supplied only text, estimating the duration from an
// average speaking pace of 2.5 words per second.
func AnalyzeTranscriptEstimated(text string) domain.TranscriptionResult {
	wordCount := len(strings.Fields(text))
	estimated := float64(wordCount) / estimatedWordsPerSecond
	return AnalyzeTranscript(text, estimated)
}
