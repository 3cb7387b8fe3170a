package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyforge/studyforge/internal/pomodoro"
)

// timerPort is the slice of pomodoro.Timer the terminal view drives.
type timerPort interface {
	Start(subject string) error
	Toggle()
	Reset()
	Tick(ctx context.Context, now time.Time) error
	Status() pomodoro.Status
}

type tickMsg time.Time

// TimerModel renders the session timer and feeds it one tick per interval.
type TimerModel struct {
	ctx      context.Context
	timer    timerPort
	subject  string
	interval time.Duration
	status   pomodoro.Status
	err      error
	quitting bool
}

// NewTimerModel starts a focus interval for subject and returns the view.
func NewTimerModel(ctx context.Context, timer timerPort, subject string, interval time.Duration) (TimerModel, error) {
	if err := timer.Start(subject); err != nil {
		return TimerModel{}, err
	}
	if interval <= 0 {
		interval = time.Second
	}

	return TimerModel{
		ctx:      ctx,
		timer:    timer,
		subject:  strings.TrimSpace(subject),
		interval: interval,
		status:   timer.Status(),
	}, nil
}

func (m TimerModel) Init() tea.Cmd {
	return m.tick()
}

func (m TimerModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if err := m.timer.Tick(m.ctx, time.Time(msg)); err != nil {
			m.err = err
		}
		m.status = m.timer.Status()
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.timer.Toggle()
		case "r":
			m.timer.Reset()
		case "s", "enter":
			if err := m.timer.Start(m.subject); err != nil {
				m.err = err
			}
		}
		m.status = m.timer.Status()
	}
	return m, nil
}

func (m TimerModel) View() string {
	if m.quitting {
		return ""
	}

	var label string
	switch m.status.State {
	case pomodoro.StateFocus:
		label = Focus.Render("FOCUS")
	case pomodoro.StateBreak:
		label = Break.Render("BREAK")
	default:
		label = Muted.Render("IDLE")
	}
	if !m.status.Running && m.status.State != pomodoro.StateIdle {
		label += Muted.Render("  paused")
	}

	lines := []string{
		Title.Render(m.subject),
		"",
		label,
		lipgloss.NewStyle().Bold(true).Render(FormatClock(m.status.Remaining)),
		"",
		Muted.Render(fmt.Sprintf("sessions completed: %d", m.status.SessionCount)),
	}
	if m.err != nil {
		lines = append(lines, ErrMsg.Render(m.err.Error()))
	}

	help := Muted.Render("space pause/resume · r reset · s start · q quit")
	return Pane.Render(strings.Join(lines, "\n")) + "\n" + help + "\n"
}

// Status is the last timer snapshot the view rendered.
func (m TimerModel) Status() pomodoro.Status {
	return m.status
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
