package impl

import (
	"context"
	"testing"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	"bikesafe/internal/domain/repository"
	mockRepo "bikesafe/internal/mocks/repository"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T) (usecase.LocationUsecase, *mockRepo.MockLocationRepository) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, &config.Config{})

	return service, locationRepo
}

func TestLocationService_Evaluate_NoRecordIsNeutral(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	eval, err := service.Evaluate(ctx, userID, entity.Coordinate{Latitude: 25.0, Longitude: 121.5})
	require.NoError(t, err)
	assert.False(t, eval.Applicable)
	assert.False(t, eval.Outside)
}

func TestLocationService_Evaluate_NoZoneIsNeutral(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserLocation{UserID: userID}, nil)

	eval, err := service.Evaluate(ctx, userID, entity.Coordinate{Latitude: 25.0, Longitude: 121.5})
	require.NoError(t, err)
	assert.False(t, eval.Applicable)
	assert.False(t, eval.Outside)
}

func TestLocationService_Evaluate_InsideAndOutside(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	center := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	location := &entity.UserLocation{
		UserID:   userID,
		SafeZone: &entity.SafeZone{Center: center, RadiusMeters: 500},
	}

	// Roughly 111 m north of the center.
	near := entity.Coordinate{Latitude: 25.0340, Longitude: 121.5654}
	locationRepo.EXPECT().FindByUser(ctx, userID).Return(location, nil)

	eval, err := service.Evaluate(ctx, userID, near)
	require.NoError(t, err)
	assert.True(t, eval.Applicable)
	assert.False(t, eval.Outside)
	assert.InDelta(t, 111, eval.DistanceMeters, 2)

	// Roughly 1.1 km north of the center.
	far := entity.Coordinate{Latitude: 25.0430, Longitude: 121.5654}
	locationRepo.EXPECT().FindByUser(ctx, userID).Return(location, nil)

	eval, err = service.Evaluate(ctx, userID, far)
	require.NoError(t, err)
	assert.True(t, eval.Applicable)
	assert.True(t, eval.Outside)
}

func TestLocationService_UpdateLocation(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	position := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	locationRepo.EXPECT().UpdateCurrentLocation(ctx, userID, position).Return(nil)
	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserLocation{UserID: userID, CurrentLocation: position}, nil)

	eval, err := service.UpdateLocation(ctx, userID, position)
	require.NoError(t, err)
	assert.False(t, eval.Applicable)
}

func TestLocationService_UpdateLocation_RejectsInvalidCoordinates(t *testing.T) {
	service, _ := createTestLocationService(t)

	eval, err := service.UpdateLocation(context.Background(), uuid.New(), entity.Coordinate{Latitude: 91, Longitude: 0})
	assert.Nil(t, eval)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLocationService_SetSafeZone_DefaultRadius(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	center := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserLocation{UserID: userID}, nil)
	locationRepo.EXPECT().
		UpdateSafeZone(ctx, userID, entity.SafeZone{Center: center, RadiusMeters: 500}).
		Return(nil)

	location, err := service.SetSafeZone(ctx, userID, &usecase.SetSafeZoneInput{Center: center})
	require.NoError(t, err)
	require.NotNil(t, location.SafeZone)
	assert.Equal(t, 500.0, location.SafeZone.RadiusMeters)
}

func TestLocationService_SetSafeZone_RejectsExcessiveRadius(t *testing.T) {
	service, _ := createTestLocationService(t)
	center := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	location, err := service.SetSafeZone(context.Background(), uuid.New(), &usecase.SetSafeZoneInput{
		Center:       center,
		RadiusMeters: 50001,
	})
	assert.Nil(t, location)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLocationService_SetSafeZone_SeedsMissingRecord(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	center := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)
	locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	location, err := service.SetSafeZone(ctx, userID, &usecase.SetSafeZoneInput{
		Center:       center,
		RadiusMeters: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, center, location.CurrentLocation)
	require.NotNil(t, location.SafeZone)
	assert.Equal(t, 1000.0, location.SafeZone.RadiusMeters)
}

func TestLocationService_GetSafeZone_NotConfigured(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.UserLocation{UserID: userID}, nil)

	zone, err := service.GetSafeZone(ctx, userID)
	assert.Nil(t, zone)
	requireErrorCode(t, err, "SAFE_ZONE_NOT_FOUND")
}

func TestLocationService_GetRealtime_NoRecord(t *testing.T) {
	service, locationRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	locationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := service.GetRealtime(ctx, userID)
	assert.Nil(t, location)
	requireErrorCode(t, err, "USER_NOT_FOUND")
}
