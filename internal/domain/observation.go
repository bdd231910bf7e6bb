// Package domain contains pure, dependency-free domain models and types
// for the interview scoring engine.
package domain

// EyeContact captures the gaze-related observations for a single frame.
type EyeContact struct {
	// IsLookingAtCamera reports whether the gaze score cleared the
	// looking-at-camera threshold for this frame.
	IsLookingAtCamera bool `json:"is_looking_at_camera"`

	// GazeScore measures how directly the candidate faces the camera,
	// from 0.0 (fully averted) to 1.0 (direct).
	GazeScore float64 `json:"gaze_score"`

	// LookingAwayDuration is the continuous time in seconds the gaze has
	// been away from the camera as of this frame. Zero while looking.
	LookingAwayDuration float64 `json:"looking_away_duration"`
}

// Posture captures the body-position observations for a single frame.
type Posture struct {
	// IsUpright reports whether the candidate's head sits above the
	// shoulder line without a detected slouch.
	IsUpright bool `json:"is_upright"`

	// PostureScore rates overall posture quality from 0.0 to 1.0.
	PostureScore float64 `json:"posture_score"`

	// SlouchDetected flags a forward-leaning head position.
	SlouchDetected bool `json:"slouch_detected"`

	// ShoulderAlignment rates how level the shoulders are, 0.0 to 1.0.
	ShoulderAlignment float64 `json:"shoulder_alignment"`
}

// Gestures captures the hand-movement observations for a single frame.
type Gestures struct {
	// HandDetected reports whether at least one hand was visible.
	HandDetected bool `json:"hand_detected"`

	// GestureCount is the number of hands gesturing in this frame.
	GestureCount int `json:"gesture_count"`

	// FidgetingScore measures hand-position jitter relative to the
	// previous frame, from 0.0 (still) to 1.0 (constant movement).
	FidgetingScore float64 `json:"fidgeting_score"`

	// HandPositions lists coarse position labels per detected hand,
	// in detection order.
	HandPositions []string `json:"hand_positions"`
}

// Expressions captures the facial-expression observations for a single frame.
type Expressions struct {
	// ConfidenceLevel rates how confident the expression reads, 0.0 to 1.0.
	ConfidenceLevel float64 `json:"confidence_level"`

	// SmileDetected flags a detected smile.
	SmileDetected bool `json:"smile_detected"`

	// ExpressionType is a coarse expression label such as "neutral",
	// "happy", "speaking", or "concerned".
	ExpressionType string `json:"expression_type"`

	// EngagementScore rates visible engagement from 0.0 to 1.0.
	EngagementScore float64 `json:"engagement_score"`
}

// FrameObservation is the structured result of analyzing one webcam frame.
// It is produced by an external frame observation source, is immutable once
// created, and is consumed by the scorers without mutation.
type FrameObservation struct {
	EyeContact  EyeContact  `json:"eye_contact"`
	Posture     Posture     `json:"posture"`
	Gestures    Gestures    `json:"gestures"`
	Expressions Expressions `json:"expressions"`

	// OverallConfidence is the per-frame blended confidence on a 0-100
	// scale, computed by the frame confidence calculator.
	OverallConfidence float64 `json:"overall_confidence"`

	// Timestamp is the frame capture time in seconds from session start.
	// Timestamps are non-decreasing within a session.
	Timestamp float64 `json:"timestamp"`
}

// DefaultFrameObservation returns the observation an external source should
// substitute when frame analysis fails entirely. Values follow the neutral
// defaults the scorers document for missing detections.
func DefaultFrameObservation(timestamp float64) FrameObservation {
	return FrameObservation{
		EyeContact: EyeContact{
			IsLookingAtCamera:   false,
			GazeScore:           0.0,
			LookingAwayDuration: 0.0,
		},
		Posture: Posture{
			IsUpright:         true,
			PostureScore:      0.5,
			SlouchDetected:    false,
			ShoulderAlignment: 0.5,
		},
		Gestures: Gestures{
			HandDetected:   false,
			GestureCount:   0,
			FidgetingScore: 0.0,
			HandPositions:  []string{},
		},
		Expressions: Expressions{
			ConfidenceLevel: 0.5,
			SmileDetected:   false,
			ExpressionType:  "neutral",
			EngagementScore: 0.5,
		},
		OverallConfidence: 50.0,
		Timestamp:         timestamp,
	}
}
