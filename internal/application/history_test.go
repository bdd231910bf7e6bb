package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intix/poise/internal/domain"
)

func recordConfidences(tracker *HistoryTracker, confidences ...float64) {
	for i, c := range confidences {
		tracker.Record(domain.SessionSummary{
			SessionID:         string(rune('a' + i)),
			OverallConfidence: c,
		})
	}
}

func TestHistoryTracker_Statistics(t *testing.T) {
	tests := []struct {
		name        string
		confidences []float64
		wantTotal   int
		wantAverage float64
		wantTrend   float64
	}{
		{
			name:        "empty history",
			confidences: nil,
		},
		{
			name:        "single session has no trend",
			confidences: []float64{72},
			wantTotal:   1,
			wantAverage: 72,
		},
		{
			name:        "steady improvement",
			confidences: []float64{60, 70, 80, 90},
			wantTotal:   4,
			wantAverage: 75,
			// (85 - 65) / 65 * 100
			wantTrend: 30.7692,
		},
		{
			name:        "odd count puts middle session in second half",
			confidences: []float64{60, 70, 80},
			wantTotal:   3,
			wantAverage: 70,
			// first half [60], second half [70 80]
			wantTrend: 25,
		},
		{
			name:        "decline reads negative",
			confidences: []float64{80, 80, 60, 60},
			wantTotal:   4,
			wantAverage: 70,
			wantTrend:   -25,
		},
		{
			name:        "zero first half yields no trend",
			confidences: []float64{0, 0, 50, 50},
			wantTotal:   4,
			wantAverage: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewHistoryTracker()
			recordConfidences(tracker, tt.confidences...)

			stats := tracker.Statistics()
			assert.Equal(t, tt.wantTotal, stats.TotalSessions)
			assert.InDelta(t, tt.wantAverage, stats.AverageConfidence, 0.0001)
			assert.InDelta(t, tt.wantTrend, stats.ImprovementTrend, 0.0001)
		})
	}
}

func TestHistoryTracker_SessionsReturnsCopy(t *testing.T) {
	tracker := NewHistoryTracker()
	recordConfidences(tracker, 50, 60)

	sessions := tracker.Sessions()
	assert.Len(t, sessions, 2)

	sessions[0].OverallConfidence = 999
	assert.InDelta(t, 50.0, tracker.Sessions()[0].OverallConfidence, 0.0001)
}
