package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api.repository")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, userName, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, userName string) (*models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user. The unique constraints on user_name and
// email make the uniqueness check and the insert a single atomic step;
// a violation surfaces as a conflict without revealing which field
// collided.
func (r *sqliteUserRepository) Create(ctx context.Context, userName, email, passwordHash string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	query := `INSERT INTO users (user_name, email, password_hash) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, userName, email, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, apperrors.Conflict("user already exists")
		}
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to read new user id: %w", err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a user by id. A missing user is reported as
// (nil, nil), not an error.
func (r *sqliteUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByID")
	defer span.End()

	var user models.User
	query := `SELECT id, user_name, email, password_hash, registration_time FROM users WHERE id = ?`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to get user by id: %w", err))
	}
	return &user, nil
}

// GetByName retrieves a user by user_name. A missing user is reported
// as (nil, nil), not an error.
func (r *sqliteUserRepository) GetByName(ctx context.Context, userName string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByName")
	defer span.End()

	var user models.User
	query := `SELECT id, user_name, email, password_hash, registration_time FROM users WHERE user_name = ?`
	if err := r.db.GetContext(ctx, &user, query, userName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to get user by name: %w", err))
	}
	return &user, nil
}
