package domain

// TranscriptionResult holds the speech measurements for one answered
// question. It is derived from a transcript via the filler-word detector and
// the speech pace calculator, and is immutable once produced.
type TranscriptionResult struct {
	// WordCount is the number of whitespace-separated words spoken.
	WordCount int `json:"word_count"`

	// Duration is the utterance length in seconds.
	Duration float64 `json:"duration"`

	// TotalFillerCount is the number of filler-word occurrences detected.
	TotalFillerCount int `json:"total_filler_count"`

	// WordsPerMinute is the speaking pace for this utterance.
	WordsPerMinute float64 `json:"words_per_minute"`
}

// FillerAnalysis is the result of scanning one transcript for filler words.
type FillerAnalysis struct {
	// FillerWords maps each detected filler to its occurrence count.
	// Fillers with zero occurrences are omitted.
	FillerWords map[string]int `json:"filler_words"`

	// TotalFillerCount is the sum of all filler occurrences.
	TotalFillerCount int `json:"total_filler_count"`

	// TotalWords is the whitespace-split word count of the transcript.
	TotalWords int `json:"total_words"`

	// FillerPercentage is TotalFillerCount/TotalWords*100, or 0 when the
	// transcript has no words.
	FillerPercentage float64 `json:"filler_percentage"`
}

// SpeechAnalysis aggregates speech measurements across a whole session.
type SpeechAnalysis struct {
	// TotalWords is the word count summed over all utterances.
	TotalWords int `json:"total_words"`

	// AverageWPM is the pace computed over the combined word count and
	// duration. Zero when there is no recorded duration.
	AverageWPM float64 `json:"average_wpm"`

	// TotalFillerCount is the filler occurrences summed over all utterances.
	TotalFillerCount int `json:"total_filler_count"`

	// FillerPercentage is the session-wide filler ratio as a percentage.
	FillerPercentage float64 `json:"filler_percentage"`

	// ClarityScore is the composite 0-100 speech clarity score.
	ClarityScore float64 `json:"clarity_score"`
}

// SessionMetrics is the end-of-session report produced once by the session
// aggregator. Every score field lies in [0,100]; the struct is never mutated
// after creation.
type SessionMetrics struct {
	EyeContactPercentage float64 `json:"eye_contact_percentage"`
	PostureScore         float64 `json:"posture_score"`
	ExpressionConfidence float64 `json:"expression_confidence"`
	GestureScore         float64 `json:"gesture_score"`
	SpeechClarityScore   float64 `json:"speech_clarity_score"`
	FillerWordCount      int     `json:"filler_word_count"`
	SpeechPace           float64 `json:"speech_pace"`
	OverallConfidence    float64 `json:"overall_confidence"`
}

// Clamp100 bounds a score to the [0,100] range used by all session-level
// and frame-level confidence values.
func Clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampUnit bounds a raw observation value to the [0,1] range.
func ClampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
