package model

import (
	"time"
)

type PomodoroSession struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Duration  int        `json:"duration"` // minutes
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Completed bool       `json:"completed"`
}

// Finalized reports whether the session satisfies EndTime != nil iff Completed.
func (s *PomodoroSession) Finalized() bool {
	return s.Completed && s.EndTime != nil
}

// Finish stamps the end time and marks the session completed.
func (s *PomodoroSession) Finish(at time.Time) {
	end := at
	s.EndTime = &end
	s.Completed = true
}
