package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/storage"
)

// SnapshotRepository loads and saves the whole progress store as one blob.
type SnapshotRepository interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snapshot *model.Snapshot) error
}

type snapshotRepository struct {
	storage storage.Storage
	key     string
}

func NewSnapshotRepository(s storage.Storage, key string) SnapshotRepository {
	return &snapshotRepository{storage: s, key: key}
}

// Load returns an empty snapshot when nothing has been saved under the key yet.
func (r *snapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	snapshot := &model.Snapshot{}

	data, err := r.storage.Read(ctx, r.key)
	if errors.Is(err, storage.ErrNotFound) {
		snapshot.Normalize()
		return snapshot, nil
	}
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(data, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", r.key, err)
	}

	snapshot.Normalize()
	return snapshot, nil
}

func (r *snapshotRepository) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return r.storage.Write(ctx, r.key, data)
}
