package service

import (
	"context"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/repository"
	"adboard/internal/validator"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.CreateUserRequest) (*models.Token, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	hasher   *PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens TokenService, hasher *PasswordHasher) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Register validates the request, hashes the password and persists the
// new user. Validation runs before any store access; uniqueness is left
// to the store, so two concurrent registrations with the same name
// cannot both succeed.
func (s *userService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if verr := validator.Check(req); verr != nil {
		return nil, verr
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.userRepo.Create(ctx, req.UserName, req.Email, hash)
}

// Login verifies the credentials and issues a fresh token. A token row
// is created on every successful call; earlier tokens stay live.
func (s *userService) Login(ctx context.Context, req *models.CreateUserRequest) (*models.Token, error) {
	if verr := validator.Check(req); verr != nil {
		return nil, verr
	}

	user, err := s.userRepo.GetByName(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("wrong password")
	}
	return s.tokens.Issue(ctx, user)
}

// GetByID returns the user with the given id.
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}
