package service

import (
	"context"
	"errors"
	"testing"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdvertisementService(t *testing.T) (AdvertisementService, *mocks.MockAdvertisementRepository, *mocks.MockTokenRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	adRepo := mocks.NewMockAdvertisementRepository(ctrl)
	tokenRepo := mocks.NewMockTokenRepository(ctrl)
	return NewAdvertisementService(adRepo, NewTokenService(tokenRepo)), adRepo, tokenRepo
}

func kindOf(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr), "expected an apperrors.Error, got %v", err)
	return appErr.Kind
}

func TestCreateRequiresToken(t *testing.T) {
	svc, _, tokenRepo := newAdvertisementService(t)

	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Create(context.Background(),
		models.Credentials{UserName: "impostor", Token: uuid.NewString()},
		&models.AdvertisementRequest{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, kindOf(t, err))
}

func TestCreateSetsOwner(t *testing.T) {
	svc, adRepo, tokenRepo := newAdvertisementService(t)

	id := uuid.NewString()
	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), id, "Tessa Gray").Return(&models.Token{ID: id, UserID: 1}, nil)
	adRepo.EXPECT().Create(gomock.Any(), "Selling a table", "Oak table", int64(1)).
		Return(&models.Advertisement{ID: 10, Title: "Selling a table", Description: "Oak table", OwnerID: 1}, nil)

	ad, err := svc.Create(context.Background(),
		models.Credentials{UserName: "Tessa Gray", Token: id},
		&models.AdvertisementRequest{Title: "Selling a table", Description: "Oak table"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ad.OwnerID)
}

func TestUpdateMissingBeatsAuthorization(t *testing.T) {
	// the token repository has no expectations: a missing advertisement
	// is a 404 before the caller's credentials are even looked at
	svc, adRepo, _ := newAdvertisementService(t)

	adRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := svc.Update(context.Background(), models.Credentials{}, 99,
		&models.AdvertisementRequest{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}

func TestUpdateByNonOwner(t *testing.T) {
	svc, adRepo, tokenRepo := newAdvertisementService(t)

	id := uuid.NewString()
	adRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Advertisement{ID: 10, OwnerID: 1}, nil)
	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), id, "Will Herondale").Return(&models.Token{ID: id, UserID: 2}, nil)

	_, err := svc.Update(context.Background(),
		models.Credentials{UserName: "Will Herondale", Token: id}, 10,
		&models.AdvertisementRequest{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, kindOf(t, err))
	assert.Equal(t, "auth error", err.(*apperrors.Error).Message)
}

func TestUpdateByOwner(t *testing.T) {
	svc, adRepo, tokenRepo := newAdvertisementService(t)

	id := uuid.NewString()
	adRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Advertisement{ID: 10, OwnerID: 1}, nil)
	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), id, "Tessa Gray").Return(&models.Token{ID: id, UserID: 1}, nil)
	adRepo.EXPECT().Update(gomock.Any(), int64(10), "new title", "new description").
		Return(&models.Advertisement{ID: 10, Title: "new title", Description: "new description", OwnerID: 1}, nil)

	ad, err := svc.Update(context.Background(),
		models.Credentials{UserName: "Tessa Gray", Token: id}, 10,
		&models.AdvertisementRequest{Title: "new title", Description: "new description"})
	require.NoError(t, err)
	assert.Equal(t, "new title", ad.Title)
}

func TestDeleteMissingBeatsAuthorization(t *testing.T) {
	svc, adRepo, _ := newAdvertisementService(t)

	adRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	err := svc.Delete(context.Background(), models.Credentials{UserName: "x", Token: "y"}, 99)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, adRepo, tokenRepo := newAdvertisementService(t)

	id := uuid.NewString()
	adRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Advertisement{ID: 10, OwnerID: 1}, nil)
	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), id, "Will Herondale").Return(&models.Token{ID: id, UserID: 2}, nil)

	err := svc.Delete(context.Background(), models.Credentials{UserName: "Will Herondale", Token: id}, 10)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, kindOf(t, err))
}

func TestDeleteByOwner(t *testing.T) {
	svc, adRepo, tokenRepo := newAdvertisementService(t)

	id := uuid.NewString()
	adRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Advertisement{ID: 10, OwnerID: 1}, nil)
	tokenRepo.EXPECT().GetByIDAndUserName(gomock.Any(), id, "Tessa Gray").Return(&models.Token{ID: id, UserID: 1}, nil)
	adRepo.EXPECT().Delete(gomock.Any(), int64(10)).Return(true, nil)

	err := svc.Delete(context.Background(), models.Credentials{UserName: "Tessa Gray", Token: id}, 10)
	require.NoError(t, err)
}

func TestGetIsPublic(t *testing.T) {
	svc, adRepo, _ := newAdvertisementService(t)

	adRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Advertisement{ID: 10, OwnerID: 1}, nil)

	ad, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ad.ID)
}
