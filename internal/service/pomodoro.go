package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/pomodoro"
)

// PomodoroService owns the process-wide session timer and feeds finished
// focus sessions into the progress store.
type PomodoroService struct {
	timer        *pomodoro.Timer
	tickInterval time.Duration
}

func NewPomodoroService(progress *ProgressService, settings config.TimerSettings) *PomodoroService {
	timer := pomodoro.New(pomodoro.Config{
		FocusSeconds:   int(settings.Focus / time.Second),
		BreakSeconds:   int(settings.Break / time.Second),
		TrackAutoFocus: settings.TrackAutoFocus,
		Recorder:       progress,
		Clock:          progress.clock,
	})

	return &PomodoroService{
		timer:        timer,
		tickInterval: settings.TickInterval,
	}
}

func (s *PomodoroService) Timer() *pomodoro.Timer {
	return s.timer
}

func (s *PomodoroService) TickInterval() time.Duration {
	return s.tickInterval
}

func (s *PomodoroService) Start(subject string) (pomodoro.Status, error) {
	err := s.timer.Start(subject)
	return s.timer.Status(), err
}

func (s *PomodoroService) Pause() pomodoro.Status {
	s.timer.Pause()
	return s.timer.Status()
}

func (s *PomodoroService) Resume() pomodoro.Status {
	s.timer.Resume()
	return s.timer.Status()
}

func (s *PomodoroService) Toggle() pomodoro.Status {
	s.timer.Toggle()
	return s.timer.Status()
}

func (s *PomodoroService) Reset() pomodoro.Status {
	s.timer.Reset()
	return s.timer.Status()
}

func (s *PomodoroService) Status() pomodoro.Status {
	return s.timer.Status()
}

// Run ticks the timer on the wall clock until ctx is done.
func (s *PomodoroService) Run(ctx context.Context) error {
	events := s.timer.Subscribe(16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logTimerEvents(events)
	}()

	err := s.timer.Run(ctx, pomodoro.NewTickerSource(s.tickInterval))
	s.timer.Close()
	<-done
	return err
}

func logTimerEvents(events <-chan pomodoro.Event) {
	for event := range events {
		switch event.Type {
		case pomodoro.EventStateChange:
			slog.Info("pomodoro state changed",
				"state", event.State,
				"running", event.Running,
				"remaining", event.Remaining,
				"session_count", event.SessionCount,
			)
		case pomodoro.EventSessionCompleted:
			if event.Err != nil {
				slog.Error("pomodoro session not saved", "error", event.Err, "session_id", event.Session.ID)
				continue
			}
			slog.Info("pomodoro session completed",
				"session_id", event.Session.ID,
				"subject", event.Session.Subject,
				"duration", event.Session.Duration,
			)
		}
	}
}
