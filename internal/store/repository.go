package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrportal/employee-portal/internal/storage"
)

// Repository round-trips the database blob through the substrate under the
// fixed store key.
type Repository struct {
	substrate storage.Substrate
	seed      SeedOptions
	logger    *slog.Logger
}

func NewRepository(substrate storage.Substrate, logger *slog.Logger) *Repository {
	return NewRepositoryWithSeed(substrate, DefaultSeedOptions(), logger)
}

func NewRepositoryWithSeed(substrate storage.Substrate, seed SeedOptions, logger *slog.Logger) *Repository {
	return &Repository{substrate: substrate, seed: seed, logger: logger}
}

// Load reads the blob and parses it. If the blob is absent or unreadable
// the seed database is returned and persisted immediately so later loads
// see a consistent value.
func (r *Repository) Load(ctx context.Context) (*Database, error) {
	raw, present, err := r.substrate.Get(ctx, storage.StoreBlobKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read store blob: %w", err)
	}

	db, seeded := ParseWith(raw, present, r.seed)
	if seeded {
		r.logger.Info("store blob absent or unreadable, seeding", "present", present)
		if err := r.Save(ctx, db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Save serializes and writes the blob. There is no retry and no rollback;
// callers surface failures as notifications and carry on with the
// in-memory value.
func (r *Repository) Save(ctx context.Context, db *Database) error {
	raw, err := Serialize(db)
	if err != nil {
		return fmt.Errorf("failed to serialize store blob: %w", err)
	}
	if err := r.substrate.Set(ctx, storage.StoreBlobKey, raw); err != nil {
		return fmt.Errorf("failed to write store blob: %w", err)
	}
	return nil
}
