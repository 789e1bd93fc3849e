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

// TokenRepository defines the interface for token data operations.
type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	GetByIDAndUserName(ctx context.Context, tokenID, userName string) (*models.Token, error)
}

type sqliteTokenRepository struct {
	db *sqlx.DB
}

// NewTokenRepository creates a new SQLite-based TokenRepository.
func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &sqliteTokenRepository{db: db}
}

// Create persists a freshly issued token.
func (r *sqliteTokenRepository) Create(ctx context.Context, token *models.Token) error {
	ctx, span := tracer.Start(ctx, "TokenRepository.Create")
	defer span.End()

	query := `INSERT INTO tokens (id, user_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.CreatedAt); err != nil {
		span.RecordError(err)
		return apperrors.Internal(fmt.Errorf("failed to create token: %w", err))
	}
	return nil
}

// GetByIDAndUserName looks up a token by its id joined to the user that
// owns it. Both halves must match the same record: a real token
// presented with the wrong user name finds nothing, exactly like an
// unknown token.
func (r *sqliteTokenRepository) GetByIDAndUserName(ctx context.Context, tokenID, userName string) (*models.Token, error) {
	ctx, span := tracer.Start(ctx, "TokenRepository.GetByIDAndUserName")
	defer span.End()

	var token models.Token
	query := `SELECT t.id, t.user_id, t.created_at FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = ? AND u.user_name = ?`
	if err := r.db.GetContext(ctx, &token, query, tokenID, userName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.Internal(fmt.Errorf("failed to look up token: %w", err))
	}
	return &token, nil
}
