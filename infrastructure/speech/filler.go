// Package speech provides the transcript-side measurements of the scoring
// engine: filler-word detection, speaking pace, and session-level speech
// aggregation including the clarity score.
//
// Everything in this package is a pure function or a stateless analyzer;
// all results are bounded and empty input resolves to documented defaults.
package speech

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/intix/poise/internal/domain"
)

// fillerLexicon is the fixed, ordered list of filler tokens and phrases
// scanned for in transcripts.
var fillerLexicon = []string{
	"um", "uh", "like", "you know", "so", "actually",
	"basically", "literally", "right", "okay", "well",
	"i mean", "kind of", "sort of",
}

// foldCaser is a package-level Unicode case folder so transcript matching
// is case-insensitive without allocating a caser per call.
var foldCaser = cases.Fold()

// DetectFillerWords scans a raw transcript for the filler lexicon and
// returns per-filler counts, the total filler count, the whitespace-split
// word count, and the filler percentage (0 when the transcript has no
// words).
//
// Matching is substring-based on the case-folded text, not word-boundary
// safe: "like" also matches inside "unlikely". This overcount is a known
// limitation of the current product behavior and is preserved deliberately;
// changing it requires product sign-off.
func DetectFillerWords(text string) domain.FillerAnalysis {
	folded := foldCaser.String(text)
	words := strings.Fields(folded)

	counts := make(map[string]int)
	total := 0
	for _, filler := range fillerLexicon {
		if n := strings.Count(folded, filler); n > 0 {
			counts[filler] = n
			total += n
		}
	}

	percentage := 0.0
	if len(words) > 0 {
		percentage = float64(total) / float64(len(words)) * 100
	}

	return domain.FillerAnalysis{
		FillerWords:      counts,
		TotalFillerCount: total,
		TotalWords:       len(words),
		FillerPercentage: percentage,
	}
}
