package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/intix/poise/infrastructure/scorers"
	"github.com/intix/poise/internal/domain"
)

// sessionState is the mutable accumulator for one active session. All
// access goes through the registry mutex; the state is never handed out
// directly.
type sessionState struct {
	startedAt      time.Time
	frames         []domain.FrameObservation
	transcriptions []domain.TranscriptionResult
	transcripts    []string
	questions      []string
	timer          *scorers.AwayTimer
}

// SessionSnapshot is the immutable capture of a session's accumulated
// streams, taken exactly once when the session ends. The slices are owned
// by the snapshot; the registry retains no reference to them.
type SessionSnapshot struct {
	SessionID      string
	StartedAt      time.Time
	Duration       float64
	Frames         []domain.FrameObservation
	Transcriptions []domain.TranscriptionResult
	Transcripts    []string
	Questions      []string
}

// SessionRegistry tracks the active sessions and their per-session state:
// the frame and transcription accumulators, the questions asked, and the
// away timer that stamps gaze durations onto incoming frames. Each session
// id owns an isolated state; frames from one session can never influence
// another's away timer or scores.
//
// All methods are safe for concurrent use. Within a single session the
// caller is expected to deliver frames in capture order; interleaving
// concurrent AddFrame calls for the same session id defeats the away
// timer's ordering assumption.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionState

	confidence *scorers.FrameConfidenceCalculator
	clock      func() time.Time
}

// NewSessionRegistry creates an empty registry that uses the given
// calculator to stamp per-frame confidence values.
func NewSessionRegistry(confidence *scorers.FrameConfidenceCalculator) *SessionRegistry {
	return &SessionRegistry{
		sessions:   make(map[string]*sessionState),
		confidence: confidence,
		clock:      time.Now,
	}
}

// Start registers a new active session. Returns ErrEmptySessionID for a
// blank id and ErrSessionExists if the id is already active. A previously
// ended id may be reused.
func (r *SessionRegistry) Start(sessionID string) error {
	if sessionID == "" {
		return domain.ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionExists, sessionID)
	}

	r.sessions[sessionID] = &sessionState{
		startedAt: r.clock(),
		timer:     scorers.NewAwayTimer(),
	}
	return nil
}

// Active reports whether the session id is currently active.
func (r *SessionRegistry) Active(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[sessionID]
	return ok
}

// ActiveCount returns the number of currently active sessions.
func (r *SessionRegistry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// AddFrame appends an observation to the session's frame stream. The
// registry stamps the frame before storing it: the away timer resolves the
// continuous looking-away duration and the looking-at-camera flag from the
// gaze score and timestamp, and the confidence calculator fills in the
// blended per-frame confidence. The stamped frame is returned so callers
// can surface the live readout.
func (r *SessionRegistry) AddFrame(sessionID string, obs domain.FrameObservation) (domain.FrameObservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		return domain.FrameObservation{}, fmt.Errorf("%w: %s", domain.ErrUnknownSession, sessionID)
	}

	obs.EyeContact.LookingAwayDuration = state.timer.Observe(obs.Timestamp, obs.EyeContact.GazeScore)
	obs.EyeContact.IsLookingAtCamera = state.timer.Looking()
	obs.OverallConfidence = r.confidence.Confidence(obs)

	state.frames = append(state.frames, obs)
	return obs, nil
}

// AddTranscription appends a speech measurement to the session's
// transcription stream, keeping the raw transcript text for the feedback
// generator.
func (r *SessionRegistry) AddTranscription(sessionID, text string, result domain.TranscriptionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSession, sessionID)
	}

	state.transcriptions = append(state.transcriptions, result)
	state.transcripts = append(state.transcripts, text)
	return nil
}

// AddQuestion records a question asked during the session so feedback
// generation can reference it and duplicate questions can be avoided.
func (r *SessionRegistry) AddQuestion(sessionID, question string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSession, sessionID)
	}

	state.questions = append(state.questions, question)
	return nil
}

// Questions returns a copy of the questions asked so far in the session.
func (r *SessionRegistry) Questions(sessionID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSession, sessionID)
	}

	out := make([]string, len(state.questions))
	copy(out, state.questions)
	return out, nil
}

// End removes the session from the registry and returns the snapshot of
// its accumulated streams. The session id becomes available for reuse
// immediately; a second End for the same id returns ErrUnknownSession.
func (r *SessionRegistry) End(sessionID string) (SessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		return SessionSnapshot{}, fmt.Errorf("%w: %s", domain.ErrUnknownSession, sessionID)
	}
	delete(r.sessions, sessionID)

	return SessionSnapshot{
		SessionID:      sessionID,
		StartedAt:      state.startedAt,
		Duration:       r.clock().Sub(state.startedAt).Seconds(),
		Frames:         state.frames,
		Transcriptions: state.transcriptions,
		Transcripts:    state.transcripts,
		Questions:      state.questions,
	}, nil
}
