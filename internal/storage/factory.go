package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/db"
)

const (
	BackendFile   = "file"
	BackendSQL    = "sql"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// New builds the storage backend selected by STORE_BACKEND.
func New(ctx context.Context, c *config.Config) (Storage, error) {
	slog.Info("initializing progress storage", "backend", c.StoreBackend, "key", c.StoreKey)

	switch c.StoreBackend {
	case BackendFile, "":
		return NewFileStorage(filepath.Clean(c.DataPath)), nil
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendSQL:
		database, err := db.Init(c.DBDriver, c.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if c.MigrateOnStart {
			if err := db.RunMigrations(database.DB, c.DBDriver); err != nil {
				database.Close()
				return nil, err
			}
		}
		return NewSQLStorage(database), nil
	case BackendS3:
		return NewS3Storage(ctx, s3ConfigFrom(c))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StoreBackend)
	}
}

func s3ConfigFrom(c *config.Config) S3Config {
	return S3Config{
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
		Prefix:    c.S3Prefix,
		Timeout:   c.S3Timeout,
	}
}
