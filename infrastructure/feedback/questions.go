package feedback

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// DefaultSimilarityThreshold is the normalized similarity above which a
// generated question counts as a repeat of a previous one.
const DefaultSimilarityThreshold = 0.8

// foldCaser performs Unicode case folding for comparison, which handles
// special cases like Turkish dotless i correctly.
var foldCaser = cases.Fold()

// QuestionDeduplicator rejects generated questions that are near-identical
// to ones already asked, using case-folded normalized Levenshtein
// similarity. Stateless and thread-safe.
type QuestionDeduplicator struct {
	threshold float64
}

// NewQuestionDeduplicator creates a deduplicator with the given similarity
// threshold. Out-of-range thresholds fall back to the default.
func NewQuestionDeduplicator(threshold float64) *QuestionDeduplicator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &QuestionDeduplicator{threshold: threshold}
}

// IsDuplicate reports whether the candidate question is too similar to any
// previous question, along with the highest similarity found.
func (d *QuestionDeduplicator) IsDuplicate(candidate string, previous []string) (bool, float64) {
	folded := foldCaser.String(candidate)

	var highest float64
	for _, q := range previous {
		similarity := stringSimilarity(folded, foldCaser.String(q))
		if similarity > highest {
			highest = similarity
		}
	}
	return highest >= d.threshold, highest
}

// stringSimilarity computes a normalized Levenshtein similarity in [0,1]:
// 1.0 for identical strings, scaled down by edit distance over the longer
// string's rune count.
func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(s1, s2)

	// Levenshtein operates on runes, so the normalizing length must too.
	maxLen := utf8.RuneCountInString(s1)
	if n := utf8.RuneCountInString(s2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	similarity := 1.0 - float64(distance)/float64(maxLen)
	if similarity < 0 {
		similarity = 0
	}
	return similarity
}
