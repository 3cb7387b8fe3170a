package pomodoro

import (
	"time"

	"github.com/studyforge/studyforge/internal/model"
)

// State is the phase reported to callers.
type State string

const (
	StateIdle  State = "idle"
	StateFocus State = "focus"
	StateBreak State = "break"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventProgress         EventType = "progress"
	EventSessionCompleted EventType = "session_completed"
)

// Event represents a timer update for observers.
type Event struct {
	Type         EventType
	State        State
	Running      bool
	Remaining    int // seconds
	SessionCount int
	Session      *model.PomodoroSession
	Err          error
	At           time.Time
}

// Status is a point-in-time copy of the timer.
type Status struct {
	State        State                  `json:"state"`
	Phase        State                  `json:"phase"`
	Running      bool                   `json:"running"`
	Remaining    int                    `json:"remaining"`
	SessionCount int                    `json:"sessionCount"`
	Subject      string                 `json:"subject"`
	Current      *model.PomodoroSession `json:"current,omitempty"`
}
