package application

import (
	"sync"

	"github.com/intix/poise/internal/domain"
)

// HistoryTracker keeps the in-memory, append-only log of completed session
// summaries and derives aggregate statistics over it. History survives for
// the lifetime of the process only; persistence is out of scope.
//
// Safe for concurrent use.
type HistoryTracker struct {
	mu       sync.RWMutex
	sessions []domain.SessionSummary
}

// NewHistoryTracker creates an empty history log.
func NewHistoryTracker() *HistoryTracker {
	return &HistoryTracker{}
}

// Record appends a completed session summary. Ordering is insertion order,
// which for the statistics below stands in for chronological order.
func (h *HistoryTracker) Record(summary domain.SessionSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append(h.sessions, summary)
}

// Sessions returns a copy of the recorded summaries in insertion order.
func (h *HistoryTracker) Sessions() []domain.SessionSummary {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.SessionSummary, len(h.sessions))
	copy(out, h.sessions)
	return out
}

// Statistics computes the aggregate view of the history log.
//
// The improvement trend splits the log into chronological halves at
// total/2 (the odd middle session lands in the second half) and reports
// the percentage change between the half averages. With fewer than two
// sessions, or a first-half average of zero, the trend is 0.
func (h *HistoryTracker) Statistics() domain.HistoryStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := len(h.sessions)
	if total == 0 {
		return domain.HistoryStats{}
	}

	var sum float64
	for _, s := range h.sessions {
		sum += s.OverallConfidence
	}
	stats := domain.HistoryStats{
		TotalSessions:     total,
		AverageConfidence: sum / float64(total),
	}

	if total < 2 {
		return stats
	}

	mid := total / 2
	firstAvg := meanConfidence(h.sessions[:mid])
	secondAvg := meanConfidence(h.sessions[mid:])
	if firstAvg != 0 {
		stats.ImprovementTrend = (secondAvg - firstAvg) / firstAvg * 100
	}
	return stats
}

func meanConfidence(sessions []domain.SessionSummary) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += s.OverallConfidence
	}
	return sum / float64(len(sessions))
}
