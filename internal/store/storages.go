package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-hub/internal/config"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/migrations"
)

// Storages groups every server-side storage backend into a single value that
// can be passed to the service layer.
type Storages struct {
	// UserRepository is the PostgreSQL-backed credential store.
	UserRepository UserRepository

	// ImageStore is the external object store holding profile images.
	ImageStore ImageStore
}

// NewStorages initialises the server storage layer: it connects to Postgres,
// applies pending goose migrations, and wires the S3 image store.
//
// Returns an error if the database connection, the migration run, or the
// image store construction fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	imageStore, err := NewS3ImageStore(ctx, cfg.Images, logger)
	if err != nil {
		return nil, fmt.Errorf("image store error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ImageStore:     imageStore,
	}, nil
}
