package feedback

import "github.com/intix/poise/internal/domain"

// Canned outputs returned whenever generation degrades. The content is
// deliberately generic so it reads sensibly for any session.

// FallbackFeedback returns the session feedback used when the provider is
// unavailable or returns unusable content.
func FallbackFeedback() domain.Feedback {
	return domain.Feedback{
		DetailedFeedback: "Thank you for completing this interview session. Continue practicing to improve your skills.",
		Strengths: []string{
			"Completed the session",
			"Engaged with the questions",
			"Showed willingness to improve",
		},
		AreasForImprovement: []string{
			"Maintain better eye contact",
			"Work on posture",
			"Reduce filler words",
		},
		Recommendations: []string{
			"Practice regularly with mock interviews",
			"Review your performance metrics",
			"Focus on one improvement area at a time",
		},
	}
}

// FallbackQuestion returns the interview question used when generation
// degrades, carrying the requested difficulty through.
func FallbackQuestion(difficulty string) domain.Question {
	return domain.Question{
		Question:   "Tell me about a challenging project you worked on and how you overcame obstacles.",
		Category:   "Behavioral",
		Difficulty: difficulty,
		Tips: []string{
			"Use the STAR method (Situation, Task, Action, Result)",
			"Be specific about your role and contributions",
			"Highlight what you learned from the experience",
		},
	}
}

// fallbackTips fills in tips when a generated question omits them.
func fallbackTips() []string {
	return []string{
		"Take your time to think",
		"Structure your answer clearly",
		"Use specific examples",
	}
}

// FallbackEvaluation returns the answer evaluation used when generation
// degrades.
func FallbackEvaluation() domain.AnswerEvaluation {
	return domain.AnswerEvaluation{
		Score:             70.0,
		ClarityScore:      70.0,
		RelevanceScore:    70.0,
		CompletenessScore: 70.0,
		Feedback:          "Unable to evaluate at this time. Please try again.",
		Strengths:         []string{"Attempted to answer the question"},
		Improvements:      []string{"Try to be more specific"},
	}
}
