package service

import (
	"context"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/repository"
	"adboard/internal/validator"
)

// AdvertisementService handles advertisement business logic. Reads are
// public; create, update and delete are gated on a verified token, and
// mutation additionally on ownership.
type AdvertisementService interface {
	Create(ctx context.Context, creds models.Credentials, req *models.AdvertisementRequest) (*models.Advertisement, error)
	Get(ctx context.Context, id int64) (*models.Advertisement, error)
	Update(ctx context.Context, creds models.Credentials, id int64, req *models.AdvertisementRequest) (*models.Advertisement, error)
	Delete(ctx context.Context, creds models.Credentials, id int64) error
}

type advertisementService struct {
	adRepo repository.AdvertisementRepository
	tokens TokenService
}

// NewAdvertisementService creates a new AdvertisementService.
func NewAdvertisementService(adRepo repository.AdvertisementRepository, tokens TokenService) AdvertisementService {
	return &advertisementService{
		adRepo: adRepo,
		tokens: tokens,
	}
}

// Create persists a new advertisement owned by the verified caller.
func (s *advertisementService) Create(ctx context.Context, creds models.Credentials, req *models.AdvertisementRequest) (*models.Advertisement, error) {
	if verr := validator.Check(req); verr != nil {
		return nil, verr
	}
	token, err := s.tokens.Verify(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.adRepo.Create(ctx, req.Title, req.Description, token.UserID)
}

// Get returns an advertisement by id. No authentication is required.
func (s *advertisementService) Get(ctx context.Context, id int64) (*models.Advertisement, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, apperrors.NotFound("advertisement not found")
	}
	return ad, nil
}

// Update replaces the advertisement's title and description. The
// advertisement is looked up before the caller is checked: a missing
// resource is a 404 even for an anonymous or invalid caller.
func (s *advertisementService) Update(ctx context.Context, creds models.Credentials, id int64, req *models.AdvertisementRequest) (*models.Advertisement, error) {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, creds, ad); err != nil {
		return nil, err
	}

	if verr := validator.Check(req); verr != nil {
		return nil, verr
	}
	updated, err := s.adRepo.Update(ctx, id, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("advertisement not found")
	}
	return updated, nil
}

// Delete removes the advertisement. Same ordering as Update: existence
// first, then authentication and ownership.
func (s *advertisementService) Delete(ctx context.Context, creds models.Credentials, id int64) error {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, creds, ad); err != nil {
		return err
	}

	deleted, err := s.adRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("advertisement not found")
	}
	return nil
}

// authorize verifies the caller's token and compares the bound user to
// the advertisement's owner. Only the owner may mutate.
func (s *advertisementService) authorize(ctx context.Context, creds models.Credentials, ad *models.Advertisement) error {
	token, err := s.tokens.Verify(ctx, creds)
	if err != nil {
		return err
	}
	if token.UserID != ad.OwnerID {
		return apperrors.Forbidden("auth error")
	}
	return nil
}
