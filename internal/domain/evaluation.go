package domain

// AnswerEvaluation is the structured assessment of one interview answer.
// All scores lie in [0,100]; the prose fields are opaque to the scoring
// core.
type AnswerEvaluation struct {
	Score             float64  `json:"score"`
	ClarityScore      float64  `json:"clarity_score"`
	RelevanceScore    float64  `json:"relevance_score"`
	CompletenessScore float64  `json:"completeness_score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
}
