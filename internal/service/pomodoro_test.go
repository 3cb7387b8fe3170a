package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/pomodoro"
	"github.com/studyforge/studyforge/internal/storage"
)

func TestPomodoroServiceRecordsIntoProgress(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	progress := newTestProgress(t, storage.NewMemoryStorage(), clock)
	svc := NewPomodoroService(progress, config.DefaultTimerSettings())

	status, err := svc.Start("Math")
	require.NoError(t, err)
	assert.Equal(t, pomodoro.StateFocus, status.State)

	now := clock.now
	for i := 0; i < 1500; i++ {
		now = now.Add(time.Second)
		require.NoError(t, svc.Timer().Tick(ctx, now))
	}

	sessions := progress.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "Math", sessions[0].Subject)
	assert.Equal(t, 25, sessions[0].Duration)
	assert.True(t, sessions[0].Completed)
	assert.Equal(t, clock.now, sessions[0].StartTime)

	status = svc.Status()
	assert.Equal(t, pomodoro.StateBreak, status.State)
	assert.Equal(t, 300, status.Remaining)
}

func TestPomodoroServiceControls(t *testing.T) {
	progress := newTestProgress(t, storage.NewMemoryStorage(), &fixedClock{now: time.Now()})
	svc := NewPomodoroService(progress, config.DefaultTimerSettings())

	_, err := svc.Start("")
	assert.Error(t, err)

	_, err = svc.Start("Biology")
	require.NoError(t, err)
	assert.False(t, svc.Pause().Running)
	assert.True(t, svc.Resume().Running)
	assert.False(t, svc.Toggle().Running)

	status := svc.Reset()
	assert.Equal(t, pomodoro.StateIdle, status.State)
	assert.Empty(t, status.Subject)
}

func TestPomodoroServiceRunStopsWithContext(t *testing.T) {
	progress := newTestProgress(t, storage.NewMemoryStorage(), &fixedClock{now: time.Now()})
	settings := config.DefaultTimerSettings()
	settings.TickInterval = time.Millisecond
	svc := NewPomodoroService(progress, settings)
	_, err := svc.Start("Math")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = svc.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, svc.Status().Remaining, 1500)
}

func TestPomodoroServiceTickInterval(t *testing.T) {
	progress := newTestProgress(t, storage.NewMemoryStorage(), &fixedClock{now: time.Now()})
	settings := config.DefaultTimerSettings()
	settings.TickInterval = 250 * time.Millisecond

	svc := NewPomodoroService(progress, settings)

	assert.Equal(t, 250*time.Millisecond, svc.TickInterval())
}
