package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/repository"
	"github.com/studyforge/studyforge/internal/validation"
)

var (
	ErrSessionNotFinalized = errors.New("session must be completed with an end time")
)

// ProgressService is the persisted progress store: goals, finished pomodoro
// sessions, manual progress records and the streak counter. Every mutation
// is written through to the repository before it returns.
type ProgressService struct {
	mu    sync.Mutex
	repo  repository.SnapshotRepository
	state model.Snapshot
	clock func() time.Time
	newID func() string
}

type ProgressOption func(*ProgressService)

func WithClock(clock func() time.Time) ProgressOption {
	return func(s *ProgressService) {
		s.clock = clock
	}
}

func WithIDGenerator(newID func() string) ProgressOption {
	return func(s *ProgressService) {
		s.newID = newID
	}
}

// NewProgressService loads the persisted snapshot and returns a ready store.
func NewProgressService(ctx context.Context, repo repository.SnapshotRepository, opts ...ProgressOption) (*ProgressService, error) {
	s := &ProgressService{
		repo:  repo,
		clock: time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	snapshot, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	s.state = *snapshot

	slog.Debug("progress store loaded",
		"goals", len(s.state.Goals),
		"sessions", len(s.state.PomodoroSessions),
		"records", len(s.state.ProgressRecords),
		"streak", s.state.CurrentStreak,
	)
	return s, nil
}

func (s *ProgressService) AddGoal(ctx context.Context, subject, target string, timeAvailable int) (*model.Goal, error) {
	subject, err := validation.ValidateSubject(subject)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := model.Goal{
		ID:            s.newID(),
		Subject:       subject,
		Target:        target,
		TimeAvailable: timeAvailable,
		CreatedAt:     s.clock(),
		Completed:     false,
	}
	s.state.Goals = append(s.state.Goals, goal)

	err = s.persistLocked(ctx)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// CompleteGoal marks the goal done. Unknown ids are ignored.
func (s *ProgressService) CompleteGoal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			s.state.Goals[i].Completed = true
			return s.persistLocked(ctx)
		}
	}

	slog.Debug("complete goal ignored, id not found", "goal_id", id)
	return nil
}

// RecordSession appends a finished pomodoro session. No de-duplication.
func (s *ProgressService) RecordSession(ctx context.Context, session model.PomodoroSession) error {
	if !session.Finalized() {
		return ErrSessionNotFinalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.PomodoroSessions = append(s.state.PomodoroSessions, session)
	return s.persistLocked(ctx)
}

// AddProgressRecord appends a record dated today.
func (s *ProgressService) AddProgressRecord(ctx context.Context, goal string, minutes int, completed bool, nextSteps string) (*model.ProgressRecord, error) {
	goal, err := validation.ValidateGoalText(goal)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateMinutes(minutes)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.ProgressRecord{
		Date:      s.today(),
		Goal:      goal,
		TimeSpent: minutes,
		Completed: completed,
		NextSteps: nextSteps,
	}
	s.state.ProgressRecords = append(s.state.ProgressRecords, record)

	err = s.persistLocked(ctx)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ComputeStreak bumps the streak when the latest record is today's and
// completed. Each call can bump it again; nothing limits it to once a day.
func (s *ProgressService) ComputeStreak(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.state.ProgressRecords
	if len(records) == 0 {
		return s.state.CurrentStreak, nil
	}

	last := records[len(records)-1]
	if last.Date != s.today() || !last.Completed {
		return s.state.CurrentStreak, nil
	}

	s.state.CurrentStreak++
	err := s.persistLocked(ctx)
	return s.state.CurrentStreak, err
}

func (s *ProgressService) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Goal{}, s.state.Goals...)
}

func (s *ProgressService) Sessions() []model.PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PomodoroSession{}, s.state.PomodoroSessions...)
}

func (s *ProgressService) Records() []model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ProgressRecord{}, s.state.ProgressRecords...)
}

func (s *ProgressService) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentStreak
}

// Snapshot returns a copy of the full store state.
func (s *ProgressService) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Stats aggregates the store on demand.
func (s *ProgressService) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.Stats{
		RecordCount: len(s.state.ProgressRecords),
		Streak:      s.state.CurrentStreak,
	}
	for _, record := range s.state.ProgressRecords {
		stats.TotalMinutes += record.TimeSpent
		if record.Completed {
			stats.CompletedCount++
		}
	}
	stats.TotalHours = math.Round(float64(stats.TotalMinutes)/60*10) / 10

	for _, session := range s.state.PomodoroSessions {
		if !session.Completed {
			continue
		}
		stats.SessionCount++
		stats.SessionMinutes += session.Duration
	}
	return stats
}

// SubjectTotals groups finished sessions by subject, ignoring case, in order
// of first appearance. The first spelling seen is the one reported.
func (s *ProgressService) SubjectTotals() []model.SubjectTotal {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := cases.Fold()
	index := make(map[string]int)
	totals := []model.SubjectTotal{}

	for _, session := range s.state.PomodoroSessions {
		if !session.Completed {
			continue
		}
		key := folder.String(session.Subject)
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, model.SubjectTotal{Subject: session.Subject})
		}
		totals[i].Sessions++
		totals[i].Minutes += session.Duration
	}
	return totals
}

func (s *ProgressService) today() string {
	return s.clock().Format(model.DateLayout)
}

func (s *ProgressService) copyLocked() model.Snapshot {
	return model.Snapshot{
		Goals:            append([]model.Goal{}, s.state.Goals...),
		PomodoroSessions: append([]model.PomodoroSession{}, s.state.PomodoroSessions...),
		ProgressRecords:  append([]model.ProgressRecord{}, s.state.ProgressRecords...),
		CurrentStreak:    s.state.CurrentStreak,
	}
}

// persistLocked writes the full state. On failure the in-memory mutation is
// kept and the error is returned to the caller.
func (s *ProgressService) persistLocked(ctx context.Context) error {
	snapshot := s.copyLocked()
	err := s.repo.Save(ctx, &snapshot)
	if err != nil {
		slog.Error("failed to persist progress", "error", err)
		return fmt.Errorf("failed to persist progress: %w", err)
	}
	return nil
}
