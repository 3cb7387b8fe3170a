package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/storage"
)

func TestLoadMissingKeyReturnsEmptySnapshot(t *testing.T) {
	repo := NewSnapshotRepository(storage.NewMemoryStorage(), "studyforge-storage")

	snapshot, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snapshot.Goals)
	assert.NotNil(t, snapshot.Goals)
	assert.NotNil(t, snapshot.PomodoroSessions)
	assert.NotNil(t, snapshot.ProgressRecords)
	assert.Zero(t, snapshot.CurrentStreak)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	repo := NewSnapshotRepository(store, "studyforge-storage")
	end := time.Date(2026, 10, 19, 10, 25, 0, 0, time.UTC)

	in := &model.Snapshot{
		Goals: []model.Goal{{ID: "g1", Subject: "Biology", Target: "finish ch.3", TimeAvailable: 60}},
		PomodoroSessions: []model.PomodoroSession{{
			ID: "s1", Subject: "Math", Duration: 25,
			StartTime: end.Add(-25 * time.Minute), EndTime: &end, Completed: true,
		}},
		ProgressRecords: []model.ProgressRecord{{Date: "2026-10-19", Goal: "Surds quiz", TimeSpent: 25, Completed: true}},
		CurrentStreak:   3,
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, in.Goals[0].ID, out.Goals[0].ID)
	assert.True(t, in.PomodoroSessions[0].EndTime.Equal(*out.PomodoroSessions[0].EndTime))
	assert.Equal(t, in.ProgressRecords, out.ProgressRecords)
	assert.Equal(t, 3, out.CurrentStreak)

	raw, err := store.Read(ctx, "studyforge-storage")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pomodoroSessions"`)
	assert.Contains(t, string(raw), `"currentStreak":3`)
}

func TestLoadCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Write(ctx, "studyforge-storage", []byte("{not json")))

	_, err := NewSnapshotRepository(store, "studyforge-storage").Load(ctx)

	assert.Error(t, err)
}
