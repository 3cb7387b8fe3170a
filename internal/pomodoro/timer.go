package pomodoro

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/validation"
)

const (
	DefaultFocusSeconds = 25 * 60
	DefaultBreakSeconds = 5 * 60
)

// SessionRecorder receives every focus session that ran down to zero.
type SessionRecorder interface {
	RecordSession(ctx context.Context, session model.PomodoroSession) error
}

// Config contains runtime options for Timer.
type Config struct {
	FocusSeconds int
	BreakSeconds int

	// TrackAutoFocus opens a new session when a break rolls over into focus.
	TrackAutoFocus bool

	Recorder SessionRecorder
	Clock    func() time.Time
	NewID    func() string
}

// Timer is the focus/break state machine. It never reads the wall clock on
// its own: ticks come from Tick or Run and timestamps from Config.Clock.
type Timer struct {
	mu           sync.Mutex
	config       Config
	idle         bool
	phase        State
	running      bool
	remaining    int
	sessionCount int
	subject      string
	current      *model.PomodoroSession
	events       []chan Event
}

// New creates an idle Timer.
func New(config Config) *Timer {
	if config.FocusSeconds <= 0 {
		config.FocusSeconds = DefaultFocusSeconds
	}
	if config.BreakSeconds <= 0 {
		config.BreakSeconds = DefaultBreakSeconds
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.NewID == nil {
		config.NewID = func() string { return uuid.New().String() }
	}

	return &Timer{
		config:    config,
		idle:      true,
		phase:     StateFocus,
		remaining: config.FocusSeconds,
	}
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (t *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	t.mu.Lock()
	t.events = append(t.events, ch)
	t.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (t *Timer) Close() {
	t.mu.Lock()
	events := t.events
	t.events = nil
	t.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start begins a focus interval for subject, or resumes the current cycle.
// A blank subject is rejected without touching any state.
func (t *Timer) Start(subject string) error {
	subject, err := validation.ValidateSubject(subject)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.idle {
		now := t.config.Clock()
		t.idle = false
		t.phase = StateFocus
		t.remaining = t.config.FocusSeconds
		t.subject = subject
		t.current = t.newSessionLocked(now)
	}
	t.running = true

	t.emitLocked(t.eventLocked(EventStateChange, t.config.Clock()))
	return nil
}

// Pause freezes the countdown. The in-flight session is kept.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pauseLocked()
}

// Resume continues a paused countdown. It does nothing while idle.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resumeLocked()
}

// Toggle flips between paused and running.
func (t *Timer) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.pauseLocked()
	} else {
		t.resumeLocked()
	}
}

func (t *Timer) pauseLocked() {
	if !t.running {
		return
	}
	t.running = false
	t.emitLocked(t.eventLocked(EventStateChange, t.config.Clock()))
}

func (t *Timer) resumeLocked() {
	if t.idle || t.running {
		return
	}
	t.running = true
	t.emitLocked(t.eventLocked(EventStateChange, t.config.Clock()))
}

// Reset returns to idle. The countdown shows the current phase's full
// length, the cycle counter and subject are cleared and any unfinished
// session is dropped. Sessions already recorded are not touched.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.idle = true
	t.running = false
	t.remaining = t.phaseSecondsLocked(t.phase)
	t.sessionCount = 0
	t.subject = ""
	t.current = nil

	t.emitLocked(t.eventLocked(EventStateChange, t.config.Clock()))
}

// Tick advances the countdown by one second. When a focus interval reaches
// zero the in-flight session is finalized and handed to the recorder; the
// recorder's error, if any, is returned after the transition has happened.
func (t *Timer) Tick(ctx context.Context, now time.Time) error {
	t.mu.Lock()
	if t.idle || !t.running {
		t.mu.Unlock()
		return nil
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		t.emitLocked(t.eventLocked(EventProgress, now))
		t.mu.Unlock()
		return nil
	}

	var finished *model.PomodoroSession
	switch t.phase {
	case StateFocus:
		if t.current != nil {
			t.current.Finish(now)
			finished = t.current
			t.current = nil
		}
		t.sessionCount++
		t.phase = StateBreak
		t.remaining = t.config.BreakSeconds
	case StateBreak:
		t.phase = StateFocus
		t.remaining = t.config.FocusSeconds
		if t.config.TrackAutoFocus {
			t.current = t.newSessionLocked(now)
		}
	}
	t.emitLocked(t.eventLocked(EventStateChange, now))
	recorder := t.config.Recorder
	t.mu.Unlock()

	if finished == nil {
		return nil
	}

	var err error
	if recorder != nil {
		err = recorder.RecordSession(ctx, *finished)
		if err != nil {
			err = fmt.Errorf("record session %s: %w", finished.ID, err)
		}
	}

	t.emit(Event{
		Type:    EventSessionCompleted,
		State:   StateBreak,
		Session: finished,
		Err:     err,
		At:      now,
	})
	return err
}

// Run drives Tick from source until ctx is done or the source closes.
func (t *Timer) Run(ctx context.Context, source TickSource) error {
	defer source.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-source.Ticks():
			if !ok {
				return nil
			}
			// Recorder failures reach observers via EventSessionCompleted.
			_ = t.Tick(ctx, now)
		}
	}
}

// Status returns a copy of the current timer state.
func (t *Timer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := Status{
		State:        t.stateLocked(),
		Phase:        t.phase,
		Running:      t.running,
		Remaining:    t.remaining,
		SessionCount: t.sessionCount,
		Subject:      t.subject,
	}
	if t.current != nil {
		current := *t.current
		status.Current = &current
	}
	return status
}

func (t *Timer) stateLocked() State {
	if t.idle {
		return StateIdle
	}
	return t.phase
}

func (t *Timer) phaseSecondsLocked(phase State) int {
	if phase == StateBreak {
		return t.config.BreakSeconds
	}
	return t.config.FocusSeconds
}

func (t *Timer) newSessionLocked(now time.Time) *model.PomodoroSession {
	return &model.PomodoroSession{
		ID:        t.config.NewID(),
		Subject:   t.subject,
		Duration:  (t.config.FocusSeconds + 59) / 60,
		StartTime: now,
	}
}

func (t *Timer) eventLocked(eventType EventType, now time.Time) Event {
	return Event{
		Type:         eventType,
		State:        t.stateLocked(),
		Running:      t.running,
		Remaining:    t.remaining,
		SessionCount: t.sessionCount,
		At:           now,
	}
}

func (t *Timer) emit(event Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.emitLocked(event)
}

func (t *Timer) emitLocked(event Event) {
	for _, ch := range t.events {
		select {
		case ch <- event:
		default:
		}
	}
}
