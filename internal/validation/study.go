package validation

import (
	"errors"
	"strings"
)

var (
	ErrSubjectRequired = errors.New("subject is required")
	ErrGoalRequired    = errors.New("goal is required")
	ErrInvalidMinutes  = errors.New("minutes must not be negative")
)

// ValidateSubject trims a study subject and rejects blank input.
func ValidateSubject(subject string) (string, error) {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return "", ErrSubjectRequired
	}
	return trimmed, nil
}

// ValidateGoalText trims the goal of a progress record and rejects blank input.
func ValidateGoalText(goal string) (string, error) {
	trimmed := strings.TrimSpace(goal)
	if trimmed == "" {
		return "", ErrGoalRequired
	}
	return trimmed, nil
}

func ValidateMinutes(minutes int) error {
	if minutes < 0 {
		return ErrInvalidMinutes
	}
	return nil
}

// IsValidationError reports whether err is a user input rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSubjectRequired) ||
		errors.Is(err, ErrGoalRequired) ||
		errors.Is(err, ErrInvalidMinutes)
}
