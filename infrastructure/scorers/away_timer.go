package scorers

// LookingAwayThreshold is the gaze score above which the candidate counts as
// looking at the camera. At or below it (including frames with no detected
// face, which report a gaze score of 0) the gaze counts as away.
const LookingAwayThreshold = 0.6

// AwayTimer tracks the continuous looking-away duration across successive
// frames of a single session's gaze stream. It is a two-state machine:
// LOOKING (initial) and AWAY. Entering AWAY records the away start; the
// duration grows monotonically with each away frame until a looking frame
// resets it to zero.
//
// One AwayTimer is scoped to exactly one active session and must never be
// shared across concurrent sessions. Timestamps must be non-decreasing
// within the session; behavior on a regressing timestamp is undefined and
// treated as caller error.
type AwayTimer struct {
	away      bool
	awayStart float64
}

// NewAwayTimer returns a timer in the LOOKING state.
func NewAwayTimer() *AwayTimer {
	return &AwayTimer{}
}

// Observe advances the state machine with one frame's gaze score and
// timestamp, returning the continuous looking-away duration as of that
// frame. A gaze score above LookingAwayThreshold transitions to LOOKING and
// returns 0; otherwise the timer is (or enters) AWAY and returns
// timestamp minus the away start.
func (t *AwayTimer) Observe(timestamp, gazeScore float64) float64 {
	if gazeScore > LookingAwayThreshold {
		t.away = false
		t.awayStart = 0
		return 0
	}

	if !t.away {
		t.away = true
		t.awayStart = timestamp
	}
	return timestamp - t.awayStart
}

// Looking reports whether the timer is currently in the LOOKING state.
func (t *AwayTimer) Looking() bool { return !t.away }
