package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intix/poise/internal/domain"
)

type stubFeedbackGenerator struct {
	feedback domain.Feedback
	err      error

	gotTranscripts []string
	gotQuestions   []string
}

func (s *stubFeedbackGenerator) GenerateSessionFeedback(
	_ context.Context,
	_ domain.SessionMetrics,
	transcripts []string,
	questions []string,
) (domain.Feedback, error) {
	s.gotTranscripts = transcripts
	s.gotQuestions = questions
	return s.feedback, s.err
}

type stubQuestionGenerator struct {
	question domain.Question
	err      error

	gotPrevious []string
}

func (s *stubQuestionGenerator) GenerateQuestion(
	_ context.Context,
	_ string,
	_ string,
	previous []string,
) (domain.Question, error) {
	s.gotPrevious = previous
	return s.question, s.err
}

func newTestService(t *testing.T, feedback *stubFeedbackGenerator, questions *stubQuestionGenerator) *CoachService {
	t.Helper()
	svc, err := NewCoachService(DefaultEngineConfig(), feedback, questions, nil, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func TestCoachService_SessionLifecycle(t *testing.T) {
	feedback := &stubFeedbackGenerator{
		feedback: domain.Feedback{
			DetailedFeedback:    "Solid session overall.",
			Strengths:           []string{"steady gaze"},
			AreasForImprovement: []string{"pace"},
			Recommendations:     []string{"practice aloud"},
		},
	}
	questions := &stubQuestionGenerator{
		question: domain.Question{Question: "Why this role?", Category: "motivation", Difficulty: "medium"},
	}
	svc := newTestService(t, feedback, questions)
	ctx := context.Background()

	require.NoError(t, svc.StartSession("s1"))

	stamped, err := svc.ProcessFrame("s1", domain.FrameObservation{
		EyeContact:  domain.EyeContact{GazeScore: 0.9},
		Posture:     domain.Posture{PostureScore: 0.8},
		Expressions: domain.Expressions{ConfidenceLevel: 0.7, EngagementScore: 0.6},
	})
	require.NoError(t, err)
	assert.True(t, stamped.EyeContact.IsLookingAtCamera)

	result, err := svc.ProcessTranscript("s1", "I led the migration project last year", 12)
	require.NoError(t, err)
	assert.Equal(t, 7, result.WordCount)

	q, err := svc.NextQuestion(ctx, "s1", "Engineer", "medium")
	require.NoError(t, err)
	assert.Equal(t, "Why this role?", q.Question)
	assert.Empty(t, questions.gotPrevious)

	report, err := svc.EndSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", report.SessionID)
	assert.InDelta(t, 90.0, report.Metrics.EyeContactPercentage, 0.0001)
	assert.Equal(t, "Solid session overall.", report.DetailedFeedback)
	assert.Equal(t, []string{"steady gaze"}, report.Strengths)

	// The generator saw the session's transcripts and questions.
	assert.Equal(t, []string{"I led the migration project last year"}, feedback.gotTranscripts)
	assert.Equal(t, []string{"Why this role?"}, feedback.gotQuestions)

	// The session lands in history with its key metrics.
	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, "s1", history[0].SessionID)
	assert.Equal(t, 1, history[0].QuestionsAnswered)
	assert.InDelta(t, 90.0, history[0].KeyMetrics["eye_contact"], 0.0001)

	stats := svc.HistoryStatistics()
	assert.Equal(t, 1, stats.TotalSessions)

	// The session id is gone after the report.
	_, err = svc.EndSession(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrUnknownSession)
}

func TestCoachService_FeedbackFailureDegradesNotFails(t *testing.T) {
	feedback := &stubFeedbackGenerator{
		feedback: domain.Feedback{DetailedFeedback: "canned"},
		err:      errors.New("provider unavailable"),
	}
	svc := newTestService(t, feedback, &stubQuestionGenerator{})

	require.NoError(t, svc.StartSession("s1"))
	report, err := svc.EndSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "canned", report.DetailedFeedback)
	assert.Len(t, svc.History(), 1)
}

func TestCoachService_QuestionTrackingFeedsGenerator(t *testing.T) {
	questions := &stubQuestionGenerator{
		question: domain.Question{Question: "Tell me about a conflict."},
	}
	svc := newTestService(t, &stubFeedbackGenerator{}, questions)
	ctx := context.Background()

	require.NoError(t, svc.StartSession("s1"))

	_, err := svc.NextQuestion(ctx, "s1", "Engineer", "easy")
	require.NoError(t, err)

	_, err = svc.NextQuestion(ctx, "s1", "Engineer", "easy")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tell me about a conflict."}, questions.gotPrevious)
}

func TestCoachService_UnknownSessionErrors(t *testing.T) {
	svc := newTestService(t, &stubFeedbackGenerator{}, &stubQuestionGenerator{})
	ctx := context.Background()

	_, err := svc.ProcessFrame("missing", domain.FrameObservation{})
	assert.ErrorIs(t, err, domain.ErrUnknownSession)

	_, err = svc.ProcessTranscript("missing", "text", 5)
	assert.ErrorIs(t, err, domain.ErrUnknownSession)

	_, err = svc.NextQuestion(ctx, "missing", "Engineer", "medium")
	assert.ErrorIs(t, err, domain.ErrUnknownSession)

	_, err = svc.EndSession(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownSession)
}

func TestCoachService_TranscriptDurationEstimated(t *testing.T) {
	svc := newTestService(t, &stubFeedbackGenerator{}, &stubQuestionGenerator{})
	require.NoError(t, svc.StartSession("s1"))

	// Ten words at the assumed 2.5 words per second pace.
	result, err := svc.ProcessTranscript("s1", "one two three four five six seven eight nine ten", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, result.WordCount)
	assert.InDelta(t, 4.0, result.Duration, 0.0001)
	assert.InDelta(t, 150.0, result.WordsPerMinute, 0.0001)
}
