package service

import (
	"context"
	"time"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/repository"

	"github.com/google/uuid"
)

// TokenService issues opaque tokens on login and verifies a
// token/identity pair on each protected request.
type TokenService interface {
	Issue(ctx context.Context, user *models.User) (*models.Token, error)
	Verify(ctx context.Context, creds models.Credentials) (*models.Token, error)
}

type tokenService struct {
	tokenRepo repository.TokenRepository
}

// NewTokenService creates a new TokenService.
func NewTokenService(tokenRepo repository.TokenRepository) TokenService {
	return &tokenService{tokenRepo: tokenRepo}
}

// Issue generates a new token bound to user and persists it. The id is
// a random UUID drawn from crypto/rand, so concurrent logins never
// collide and ids are not guessable.
func (s *tokenService) Issue(ctx context.Context, user *models.User) (*models.Token, error) {
	token := &models.Token{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// Verify checks the claimed token id and user name against a single
// stored record. The token carries no proof of the caller's name by
// itself, so both halves are re-validated together on every call; any
// mismatch fails identically to an unknown token.
func (s *tokenService) Verify(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	if creds.UserName == "" || creds.Token == "" {
		return nil, apperrors.Unauthorized("invalid token or user name")
	}
	token, err := s.tokenRepo.GetByIDAndUserName(ctx, creds.Token, creds.UserName)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, apperrors.Unauthorized("invalid token or user name")
	}
	return token, nil
}
