package services

import (
	"errors"
	"fmt"
)

// ErrNotFound - unknown user or game id. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError - malformed input, nothing was mutated. Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Eligibility denial reasons.
const (
	ReasonInsufficientPlaytime = "insufficient playtime"
	ReasonRatingDisabled       = "rating disabled"
	ReasonCommentingDisabled   = "commenting disabled"
)

// EligibilityError - the review gate said no. Threshold carries the
// required playtime minutes for user-facing messaging when the reason is
// insufficient playtime. Maps to 403.
type EligibilityError struct {
	Reason    string
	Threshold int
}

func (e *EligibilityError) Error() string {
	if e.Threshold > 0 {
		return fmt.Sprintf("%s: at least %d minutes of playtime required", e.Reason, e.Threshold)
	}
	return e.Reason
}
