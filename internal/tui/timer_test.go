package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/pomodoro"
)

type recorderStub struct {
	sessions []model.PomodoroSession
	err      error
}

func (r *recorderStub) RecordSession(ctx context.Context, session model.PomodoroSession) error {
	r.sessions = append(r.sessions, session)
	return r.err
}

var baseTime = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, recorder *recorderStub) TimerModel {
	t.Helper()
	timer := pomodoro.New(pomodoro.Config{
		FocusSeconds: 2,
		BreakSeconds: 1,
		Recorder:     recorder,
		Clock:        func() time.Time { return baseTime },
	})
	m, err := NewTimerModel(context.Background(), timer, "Math", time.Second)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m TimerModel, msg tea.Msg) TimerModel {
	t.Helper()
	next, _ := m.Update(msg)
	tm, ok := next.(TimerModel)
	require.True(t, ok)
	return tm
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewTimerModelRejectsBlankSubject(t *testing.T) {
	timer := pomodoro.New(pomodoro.Config{})

	_, err := NewTimerModel(context.Background(), timer, "  ", time.Second)

	assert.Error(t, err)
	assert.Equal(t, pomodoro.StateIdle, timer.Status().State)
}

func TestTimerModelStartsFocus(t *testing.T) {
	m := newTestModel(t, &recorderStub{})

	assert.Equal(t, pomodoro.StateFocus, m.Status().State)
	assert.True(t, m.Status().Running)
	assert.Equal(t, 2, m.Status().Remaining)
	assert.NotNil(t, m.Init())
}

func TestTimerModelTicksIntoBreak(t *testing.T) {
	recorder := &recorderStub{}
	m := newTestModel(t, recorder)

	m = update(t, m, tickMsg(baseTime.Add(time.Second)))
	assert.Equal(t, 1, m.Status().Remaining)

	m = update(t, m, tickMsg(baseTime.Add(2*time.Second)))
	assert.Equal(t, pomodoro.StateBreak, m.Status().State)
	assert.Equal(t, 1, m.Status().SessionCount)
	require.Len(t, recorder.sessions, 1)
	assert.Equal(t, "Math", recorder.sessions[0].Subject)
}

func TestTimerModelShowsRecorderError(t *testing.T) {
	m := newTestModel(t, &recorderStub{err: errors.New("disk full")})

	m = update(t, m, tickMsg(baseTime))
	m = update(t, m, tickMsg(baseTime))

	assert.Contains(t, m.View(), "disk full")
}

func TestTimerModelKeys(t *testing.T) {
	m := newTestModel(t, &recorderStub{})

	m = update(t, m, keyRunes(" "))
	assert.False(t, m.Status().Running)
	assert.Contains(t, m.View(), "paused")

	m = update(t, m, keyRunes(" "))
	assert.True(t, m.Status().Running)

	m = update(t, m, keyRunes("r"))
	assert.Equal(t, pomodoro.StateIdle, m.Status().State)
	assert.Contains(t, m.View(), "IDLE")

	m = update(t, m, keyRunes("s"))
	assert.Equal(t, pomodoro.StateFocus, m.Status().State)
	assert.Equal(t, "Math", m.Status().Subject)
}

func TestTimerModelQuit(t *testing.T) {
	m := newTestModel(t, &recorderStub{})

	next, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "00:00", FormatClock(-3))
}
