package speech

// WordsPerMinute converts a word count and duration into speaking pace.
// A non-positive duration returns 0.0 rather than dividing by zero.
func WordsPerMinute(wordCount int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0.0
	}
	return float64(wordCount) / durationSeconds * 60
}
