package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/intix/poise/internal/domain"
	"github.com/intix/poise/internal/ports"
)

// Generation temperatures follow the prompt intent: evaluation and
// feedback favor consistency, question generation favors variety.
const (
	feedbackTemperature = 0.7
	questionTemperature = 0.8

	// sampleAnswerLimit caps how many transcripts are quoted in the
	// session feedback prompt.
	sampleAnswerLimit = 3
)

// Generator produces narrative feedback, interview questions, and answer
// evaluations through a completion client. Every method degrades to a
// canned result instead of failing: the returned error only reports that
// degradation happened, and the returned value is always usable.
//
// Safe for concurrent use.
type Generator struct {
	client    ports.CompletionClient
	questions *QuestionDeduplicator
	logger    zerolog.Logger
}

// NewGenerator creates a Generator backed by the given completion client.
func NewGenerator(client ports.CompletionClient, logger zerolog.Logger) *Generator {
	return &Generator{
		client:    client,
		questions: NewQuestionDeduplicator(DefaultSimilarityThreshold),
		logger:    logger.With().Str("component", "feedback_generator").Logger(),
	}
}

var _ ports.FeedbackGenerator = (*Generator)(nil)
var _ ports.QuestionGenerator = (*Generator)(nil)

const feedbackSystemPrompt = `You are an expert interview coach providing comprehensive session feedback.
Analyze the candidate's overall performance and provide actionable recommendations.
Return your response as a JSON object with:
{
    "detailed_feedback": "2-3 paragraph comprehensive analysis",
    "strengths": ["strength1", "strength2", "strength3"],
    "areas_for_improvement": ["area1", "area2", "area3"],
    "recommendations": ["recommendation1", "recommendation2", "recommendation3"]
}`

// GenerateSessionFeedback asks the provider for whole-session feedback.
// One best-effort call: any provider error or unusable JSON response
// resolves to the canned fallback feedback, with the cause reported in
// the returned error for logging.
func (g *Generator) GenerateSessionFeedback(
	ctx context.Context,
	metrics domain.SessionMetrics,
	transcripts []string,
	questions []string,
) (domain.Feedback, error) {
	prompt := buildFeedbackPrompt(metrics, transcripts, questions)

	response, err := g.client.Complete(ctx, prompt, map[string]any{
		"system":      feedbackSystemPrompt,
		"temperature": feedbackTemperature,
		"json":        true,
	})
	if err != nil {
		return FallbackFeedback(), fmt.Errorf("session feedback generation failed: %w", err)
	}

	var payload struct {
		DetailedFeedback    string   `json:"detailed_feedback"`
		Strengths           []string `json:"strengths"`
		AreasForImprovement []string `json:"areas_for_improvement"`
		Recommendations     []string `json:"recommendations"`
	}
	if err := decodeJSONObject(response, &payload); err != nil {
		return FallbackFeedback(), fmt.Errorf("session feedback response unusable: %w", err)
	}

	fallback := FallbackFeedback()
	result := domain.Feedback{
		DetailedFeedback:    payload.DetailedFeedback,
		Strengths:           payload.Strengths,
		AreasForImprovement: payload.AreasForImprovement,
		Recommendations:     payload.Recommendations,
	}
	if result.DetailedFeedback == "" {
		result.DetailedFeedback = fallback.DetailedFeedback
	}
	if len(result.Strengths) == 0 {
		result.Strengths = fallback.Strengths
	}
	if len(result.AreasForImprovement) == 0 {
		result.AreasForImprovement = fallback.AreasForImprovement
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = fallback.Recommendations
	}

	return result, nil
}

func buildFeedbackPrompt(metrics domain.SessionMetrics, transcripts, questions []string) string {
	var b strings.Builder
	b.WriteString("Provide comprehensive feedback for this interview session.\n\n")
	b.WriteString("Performance Metrics:\n")
	fmt.Fprintf(&b, "- Eye Contact: %.1f%%\n", metrics.EyeContactPercentage)
	fmt.Fprintf(&b, "- Posture Score: %.1f/100\n", metrics.PostureScore)
	fmt.Fprintf(&b, "- Expression Confidence: %.1f/100\n", metrics.ExpressionConfidence)
	fmt.Fprintf(&b, "- Gesture Score: %.1f/100\n", metrics.GestureScore)
	fmt.Fprintf(&b, "- Speech Clarity: %.1f/100\n", metrics.SpeechClarityScore)
	fmt.Fprintf(&b, "- Filler Words: %d occurrences\n", metrics.FillerWordCount)
	fmt.Fprintf(&b, "- Speech Pace: %.1f WPM\n", metrics.SpeechPace)
	fmt.Fprintf(&b, "- Overall Confidence: %.1f/100\n\n", metrics.OverallConfidence)
	fmt.Fprintf(&b, "Number of Questions Answered: %d\n\n", len(questions))

	b.WriteString("Sample Answers:\n")
	if len(transcripts) == 0 {
		b.WriteString("No transcriptions available\n")
	} else {
		samples := transcripts
		if len(samples) > sampleAnswerLimit {
			samples = samples[:sampleAnswerLimit]
		}
		encoded, _ := json.MarshalIndent(samples, "", "  ")
		b.Write(encoded)
		b.WriteString("\n")
	}

	b.WriteString("\nProvide:\n")
	b.WriteString("1. Detailed feedback analyzing their performance\n")
	b.WriteString("2. Top 3 strengths\n")
	b.WriteString("3. Top 3 areas for improvement\n")
	b.WriteString("4. 3 specific, actionable recommendations\n\n")
	b.WriteString("Be encouraging but honest. Focus on growth and improvement.")
	return b.String()
}

const questionSystemPrompt = `You are an expert interview coach and hiring manager.
Generate realistic, relevant interview questions that assess both technical skills and soft skills.
Return your response as a JSON object with the following structure:
{
    "question": "The interview question",
    "category": "Category (e.g., Technical, Behavioral, Problem-Solving)",
    "difficulty": "easy/medium/hard",
    "tips": ["tip1", "tip2", "tip3"]
}`

// GenerateQuestion asks the provider for a fresh interview question for
// the role and difficulty. A generated question too similar to one already
// asked is rejected and replaced with the canned fallback, as is any
// provider or parse failure.
func (g *Generator) GenerateQuestion(
	ctx context.Context,
	jobRole, difficulty string,
	previousQuestions []string,
) (domain.Question, error) {
	prompt := buildQuestionPrompt(jobRole, difficulty, previousQuestions)

	response, err := g.client.Complete(ctx, prompt, map[string]any{
		"system":      questionSystemPrompt,
		"temperature": questionTemperature,
		"json":        true,
	})
	if err != nil {
		return FallbackQuestion(difficulty), fmt.Errorf("question generation failed: %w", err)
	}

	var payload struct {
		Question   string   `json:"question"`
		Category   string   `json:"category"`
		Difficulty string   `json:"difficulty"`
		Tips       []string `json:"tips"`
	}
	if err := decodeJSONObject(response, &payload); err != nil {
		return FallbackQuestion(difficulty), fmt.Errorf("question response unusable: %w", err)
	}
	if payload.Question == "" {
		return FallbackQuestion(difficulty), fmt.Errorf("question response missing question text")
	}

	if dup, similarity := g.questions.IsDuplicate(payload.Question, previousQuestions); dup {
		return FallbackQuestion(difficulty), fmt.Errorf(
			"generated question too similar to a previous one (similarity %.2f)", similarity)
	}

	result := domain.Question{
		Question:   payload.Question,
		Category:   payload.Category,
		Difficulty: payload.Difficulty,
		Tips:       payload.Tips,
	}
	if result.Category == "" {
		result.Category = "General"
	}
	if result.Difficulty == "" {
		result.Difficulty = difficulty
	}
	if len(result.Tips) == 0 {
		result.Tips = fallbackTips()
	}

	return result, nil
}

func buildQuestionPrompt(jobRole, difficulty string, previousQuestions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s difficulty interview question for a %s position.\n\n", difficulty, jobRole)

	b.WriteString("Previous questions asked (avoid similar topics):\n")
	if len(previousQuestions) == 0 {
		b.WriteString("None\n")
	} else {
		encoded, _ := json.MarshalIndent(previousQuestions, "", "  ")
		b.Write(encoded)
		b.WriteString("\n")
	}

	b.WriteString("\nRequirements:\n")
	b.WriteString("- Make it realistic and commonly asked in actual interviews\n")
	b.WriteString("- Ensure it's different from previous questions\n")
	b.WriteString("- Include 3 helpful tips for answering\n")
	b.WriteString("- For behavioral questions, use the STAR method framework\n")
	b.WriteString("- For technical questions, focus on practical scenarios")
	return b.String()
}

const evaluationSystemPrompt = `You are an expert interview evaluator and career coach.
Evaluate interview answers objectively and provide constructive feedback.
Return your response as a JSON object with the following structure:
{
    "score": 85,
    "clarity_score": 90,
    "relevance_score": 85,
    "completeness_score": 80,
    "feedback": "Overall feedback paragraph",
    "strengths": ["strength1", "strength2", "strength3"],
    "improvements": ["improvement1", "improvement2"]
}

Scoring criteria (0-100):
- Clarity: How well-structured and understandable is the answer?
- Relevance: How well does it address the question?
- Completeness: Does it cover all important aspects?
- Overall: Weighted average of the above`

// EvaluateAnswer asks the provider to score one answer against its
// question. Scores are clamped to [0,100]; any failure resolves to the
// canned fallback evaluation.
func (g *Generator) EvaluateAnswer(
	ctx context.Context,
	question, answer, jobRole string,
) (domain.AnswerEvaluation, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Evaluate this interview answer for a %s position.\n\n", jobRole)
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Answer: %s\n\n", answer)
	b.WriteString("Provide:\n")
	b.WriteString("1. Scores (0-100) for clarity, relevance, and completeness\n")
	b.WriteString("2. An overall score (weighted average)\n")
	b.WriteString("3. Constructive feedback (2-3 sentences)\n")
	b.WriteString("4. 2-3 key strengths\n")
	b.WriteString("5. 1-2 areas for improvement\n\n")
	b.WriteString("Be honest but encouraging. Focus on actionable feedback.")

	response, err := g.client.Complete(ctx, b.String(), map[string]any{
		"system":      evaluationSystemPrompt,
		"temperature": feedbackTemperature,
		"json":        true,
	})
	if err != nil {
		return FallbackEvaluation(), fmt.Errorf("answer evaluation failed: %w", err)
	}

	var payload domain.AnswerEvaluation
	if err := decodeJSONObject(response, &payload); err != nil {
		return FallbackEvaluation(), fmt.Errorf("answer evaluation response unusable: %w", err)
	}

	fallback := FallbackEvaluation()
	payload.Score = domain.Clamp100(payload.Score)
	payload.ClarityScore = domain.Clamp100(payload.ClarityScore)
	payload.RelevanceScore = domain.Clamp100(payload.RelevanceScore)
	payload.CompletenessScore = domain.Clamp100(payload.CompletenessScore)
	if payload.Feedback == "" {
		payload.Feedback = fallback.Feedback
	}
	if len(payload.Strengths) == 0 {
		payload.Strengths = fallback.Strengths
	}
	if len(payload.Improvements) == 0 {
		payload.Improvements = fallback.Improvements
	}

	return payload, nil
}

// decodeJSONObject parses a provider response into out, tolerating the
// markdown code fences some models wrap around JSON output.
func decodeJSONObject(response string, out any) error {
	trimmed := strings.TrimSpace(response)
	if after, ok := strings.CutPrefix(trimmed, "```json"); ok {
		trimmed = after
	} else if after, ok := strings.CutPrefix(trimmed, "```"); ok {
		trimmed = after
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
