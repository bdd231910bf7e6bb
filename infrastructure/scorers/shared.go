// Package scorers provides the deterministic category scorers that reduce a
// session's frame and speech observations into bounded 0-100 scores.
//
// Every scorer is stateless and safe for concurrent use: it folds an
// immutable observation sequence into a single clamped score, substituting a
// documented neutral default when the sequence is empty. Penalty constants
// are configurable per scorer and validated at construction; the defaults
// reproduce the reference scoring rules.
package scorers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Common errors returned by scorer constructors.
var (
	// ErrEmptyScorerName is returned when creating a scorer with an empty name.
	ErrEmptyScorerName = errors.New("scorer name cannot be empty")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
