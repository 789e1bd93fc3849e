package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// AdvertisementRepository defines the interface for advertisement data
// operations.
type AdvertisementRepository interface {
	Create(ctx context.Context, title, description string, ownerID int64) (*models.Advertisement, error)
	GetByID(ctx context.Context, id int64) (*models.Advertisement, error)
	Update(ctx context.Context, id int64, title, description string) (*models.Advertisement, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type sqliteAdvertisementRepository struct {
	db *sqlx.DB
}

// NewAdvertisementRepository creates a new SQLite-based
// AdvertisementRepository.
func NewAdvertisementRepository(db *sqlx.DB) AdvertisementRepository {
	return &sqliteAdvertisementRepository{db: db}
}

// Create inserts a new advertisement owned by ownerID and returns the
// stored record.
func (r *sqliteAdvertisementRepository) Create(ctx context.Context, title, description string, ownerID int64) (*models.Advertisement, error) {
	ctx, span := tracer.Start(ctx, "AdvertisementRepository.Create")
	defer span.End()

	query := `INSERT INTO advertisements (title, description, owner_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, title, description, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to create advertisement: %w", err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to read new advertisement id: %w", err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves an advertisement by id. A missing advertisement is
// reported as (nil, nil), not an error.
func (r *sqliteAdvertisementRepository) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	ctx, span := tracer.Start(ctx, "AdvertisementRepository.GetByID")
	defer span.End()

	var ad models.Advertisement
	query := `SELECT id, title, description, created_at, owner_id FROM advertisements WHERE id = ?`
	if err := r.db.GetContext(ctx, &ad, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to get advertisement: %w", err))
	}
	return &ad, nil
}

// Update replaces title and description inside a single transaction and
// returns the updated record, or (nil, nil) if the advertisement no
// longer exists.
func (r *sqliteAdvertisementRepository) Update(ctx context.Context, id int64, title, description string) (*models.Advertisement, error) {
	ctx, span := tracer.Start(ctx, "AdvertisementRepository.Update")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE advertisements SET title = ?, description = ? WHERE id = ?`, title, description, id)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to update advertisement: %w", err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to read update result: %w", err))
	}
	if affected == 0 {
		return nil, nil
	}

	var ad models.Advertisement
	query := `SELECT id, title, description, created_at, owner_id FROM advertisements WHERE id = ?`
	if err := tx.GetContext(ctx, &ad, query, id); err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to read back advertisement: %w", err))
	}
	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to commit update: %w", err))
	}
	return &ad, nil
}

// Delete removes an advertisement and reports whether a row was
// actually deleted.
func (r *sqliteAdvertisementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "AdvertisementRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = ?`, id)
	if err != nil {
		span.RecordError(err)
		return false, apperrors.Internal(fmt.Errorf("failed to delete advertisement: %w", err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return false, apperrors.Internal(fmt.Errorf("failed to read delete result: %w", err))
	}
	return affected > 0, nil
}
