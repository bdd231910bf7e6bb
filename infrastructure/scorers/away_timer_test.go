package scorers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAwayTimer_Observe walks the canonical trace: away at t=0, growing
// duration while away, reset to zero the moment the gaze returns.
func TestAwayTimer_Observe(t *testing.T) {
	timer := NewAwayTimer()

	steps := []struct {
		timestamp float64
		gaze      float64
		expected  float64
	}{
		{0.0, 0.2, 0.0}, // enters AWAY, duration starts at zero
		{1.0, 0.3, 1.0},
		{4.0, 0.1, 4.0},
		{5.0, 0.9, 0.0}, // looking again resets
		{6.0, 0.5, 0.0}, // re-enters AWAY with a fresh start
		{8.5, 0.5, 2.5},
	}

	for _, step := range steps {
		got := timer.Observe(step.timestamp, step.gaze)
		assert.InDelta(t, step.expected, got, 0.0001,
			"timestamp %.1f gaze %.1f", step.timestamp, step.gaze)
	}
}

func TestAwayTimer_ThresholdBoundary(t *testing.T) {
	timer := NewAwayTimer()

	// Exactly at the threshold counts as away.
	assert.InDelta(t, 0.0, timer.Observe(0.0, LookingAwayThreshold), 0.0001)
	assert.False(t, timer.Looking())
	assert.InDelta(t, 2.0, timer.Observe(2.0, LookingAwayThreshold), 0.0001)

	// Just above transitions back to looking.
	assert.InDelta(t, 0.0, timer.Observe(3.0, LookingAwayThreshold+0.01), 0.0001)
	assert.True(t, timer.Looking())
}

func TestAwayTimer_StartsLooking(t *testing.T) {
	timer := NewAwayTimer()
	assert.True(t, timer.Looking())
}
