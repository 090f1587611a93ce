package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	mockRepo "bikesafe/internal/mocks/repository"
	mockService "bikesafe/internal/mocks/service"
	mockUsecase "bikesafe/internal/mocks/usecase"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type telemetryServiceFixtures struct {
	service     *telemetryService
	sensorRepo  *mockRepo.MockSensorRepository
	userRepo    *mockRepo.MockUserRepository
	historyRepo *mockRepo.MockHistoryRepository
	locationUC  *mockUsecase.MockLocationUsecase
	publisher   *mockService.MockAlertPublisher
	pairingSvc  *mockService.MockPairingService
	now         time.Time
}

func createTestTelemetryService(t *testing.T) *telemetryServiceFixtures {
	sensorRepo := mockRepo.NewMockSensorRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	publisher := mockService.NewMockAlertPublisher(t)
	pairingSvc := mockService.NewMockPairingService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewTelemetryService(
		sensorRepo, userRepo, historyRepo, locationUC,
		publisher, pairingSvc, &config.Config{}, logger,
	).(*telemetryService)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return now }

	return &telemetryServiceFixtures{
		service:     svc,
		sensorRepo:  sensorRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		locationUC:  locationUC,
		publisher:   publisher,
		pairingSvc:  pairingSvc,
		now:         now,
	}
}

func testUser(id uuid.UUID, prefs ...entity.AlertKind) *entity.User {
	if prefs == nil {
		prefs = entity.DefaultAlertPreferences()
	}

	return &entity.User{ID: id, Email: "rider@example.com", AlertPreferences: prefs}
}

func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestTelemetryService_Ingest_AutoCreatesSensor(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 55.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	fx.sensorRepo.EXPECT().
		FindBySensorID(ctx, "bat-01").
		Return(nil, repository.ErrSensorNotFound)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(nil)
	fx.historyRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).
		Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, result.HistorySaved)
	assert.Empty(t, result.Alerts)
	assert.Equal(t, userID, result.Sensor.UserID)
	assert.Equal(t, entity.SensorKindBattery, result.Sensor.Kind)
	require.NotNil(t, result.Sensor.Values.BatteryLevel)
	assert.Equal(t, 55.0, *result.Sensor.Values.BatteryLevel)
	assert.Equal(t, fx.now, result.Sensor.LastUpdatedAt)
}

func TestTelemetryService_Ingest_OwnershipViolation(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	level := 55.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	fx.sensorRepo.EXPECT().
		FindBySensorID(ctx, "bat-01").
		Return(&entity.Sensor{ID: uuid.New(), UserID: owner, SensorID: "bat-01", Kind: entity.SensorKindBattery}, nil)

	result, err := fx.service.Ingest(ctx, intruder, input)
	assert.Nil(t, result)
	requireErrorCode(t, err, "SENSOR_OWNERSHIP_VIOLATION")
}

func TestTelemetryService_Ingest_DuplicateCreateIsOwnershipViolation(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 55.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	// Another writer claimed the sensor between our read and our insert.
	fx.sensorRepo.EXPECT().
		FindBySensorID(ctx, "bat-01").
		Return(nil, repository.ErrSensorNotFound)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(repository.ErrDuplicateSensor)

	result, err := fx.service.Ingest(ctx, userID, input)
	assert.Nil(t, result)
	requireErrorCode(t, err, "SENSOR_OWNERSHIP_VIOLATION")
}

func TestTelemetryService_Ingest_StoredKindWins(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	temp := 22.5
	// The payload claims battery but the sensor registered as temperature.
	input := &usecase.IngestInput{
		SensorID: "temp-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{Temperature: &temp},
	}

	prev := &entity.Sensor{
		ID:            uuid.New(),
		UserID:        userID,
		SensorID:      "temp-01",
		Kind:          entity.SensorKindTemperature,
		LastUpdatedAt: fx.now.Add(-time.Minute),
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "temp-01").Return(prev, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.SensorKindTemperature, result.Sensor.Kind)
	require.NotNil(t, result.Sensor.Values.Temperature)
	assert.Equal(t, 22.5, *result.Sensor.Values.Temperature)
	assert.Nil(t, result.Sensor.Values.BatteryLevel)
}

func TestTelemetryService_Ingest_PreferenceFilterSuppressesAlert(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	temp := 65.0
	input := &usecase.IngestInput{
		SensorID: "temp-01",
		Kind:     entity.SensorKindTemperature,
		Values:   entity.Values{Temperature: &temp},
	}

	// Default preferences do not include temperature alerts.
	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "temp-01").Return(nil, repository.ErrSensorNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
}

func TestTelemetryService_Ingest_PublishesBatteryAlert(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 5.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	prev := &entity.Sensor{
		ID:            uuid.New(),
		UserID:        userID,
		SensorID:      "bat-01",
		Kind:          entity.SensorKindBattery,
		LastUpdatedAt: fx.now.Add(-time.Minute),
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(prev, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).Return(nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, entity.AlertKindBattery, result.Alerts[0].Kind)
	assert.Equal(t, userID, result.Alerts[0].UserID)
}

func TestTelemetryService_Ingest_PublishFailureDoesNotFailIngest(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 5.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(nil, repository.ErrSensorNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).Return(nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(errors.New("broker down"))

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
}

func TestTelemetryService_Ingest_SensorFailureAlert(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 50.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	saved := fx.now.Add(-10 * time.Second)
	prev := &entity.Sensor{
		ID:                 uuid.New(),
		UserID:             userID,
		SensorID:           "bat-01",
		Kind:               entity.SensorKindBattery,
		LastUpdatedAt:      fx.now.Add(-11 * time.Minute),
		LastHistorySavedAt: &saved,
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(prev, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID, entity.AlertKindSensorFailure), nil)
	fx.sensorRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, entity.AlertKindSensorFailure, result.Alerts[0].Kind)
	assert.False(t, result.HistorySaved)
}

func TestTelemetryService_Ingest_NoDeduplication(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 5.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	saved := fx.now.Add(-time.Second)
	prev := &entity.Sensor{
		ID:                 uuid.New(),
		UserID:             userID,
		SensorID:           "bat-01",
		Kind:               entity.SensorKindBattery,
		Values:             entity.Values{BatteryLevel: &level},
		LastUpdatedAt:      fx.now.Add(-time.Minute),
		LastHistorySavedAt: &saved,
	}

	// The same condition raises again on every update.
	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(prev, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
}

func TestTelemetryService_Ingest_HistoryThrottle(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	level := 50.0
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{BatteryLevel: &level},
	}

	saved := fx.now.Add(-10 * time.Second)
	prev := &entity.Sensor{
		ID:                 uuid.New(),
		UserID:             userID,
		SensorID:           "bat-01",
		Kind:               entity.SensorKindBattery,
		LastUpdatedAt:      fx.now.Add(-10 * time.Second),
		LastHistorySavedAt: &saved,
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(prev, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.sensorRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	assert.False(t, result.HistorySaved)
	assert.Equal(t, &saved, result.Sensor.LastHistorySavedAt)
}

func TestTelemetryService_Ingest_GPSOutsideZone(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	lat, lon := 25.0330, 121.5654
	input := &usecase.IngestInput{
		SensorID: "gps-01",
		Kind:     entity.SensorKindGPS,
		Values:   entity.Values{Latitude: &lat, Longitude: &lon},
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "gps-01").Return(nil, repository.ErrSensorNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.locationUC.EXPECT().
		UpdateLocation(ctx, userID, entity.Coordinate{Latitude: lat, Longitude: lon}).
		Return(&usecase.ZoneEvaluation{Applicable: true, Outside: true, DistanceMeters: 912.3}, nil)
	fx.sensorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sensor")).Return(nil)
	fx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.SensorSnapshot")).Return(nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil)

	result, err := fx.service.Ingest(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, entity.AlertKindSafeZone, result.Alerts[0].Kind)
}

func TestTelemetryService_Ingest_UnknownKind(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	input := &usecase.IngestInput{SensorID: "x-01", Kind: "pressure"}

	result, err := fx.service.Ingest(ctx, uuid.New(), input)
	assert.Nil(t, result)
	requireErrorCode(t, err, "UNKNOWN_SENSOR_KIND")
}

func TestTelemetryService_Ingest_MissingReadingFields(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	temp := 22.5
	// Battery kind with only a temperature value has nothing to apply.
	input := &usecase.IngestInput{
		SensorID: "bat-01",
		Kind:     entity.SensorKindBattery,
		Values:   entity.Values{Temperature: &temp},
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "bat-01").Return(nil, repository.ErrSensorNotFound)

	result, err := fx.service.Ingest(ctx, userID, input)
	assert.Nil(t, result)
	requireErrorCode(t, err, "MISSING_READING_FIELDS")
}

func TestTelemetryService_Ingest_RejectsOutOfRangeCoordinates(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	lat, lon := 91.0, 121.5654
	input := &usecase.IngestInput{
		SensorID: "gps-01",
		Kind:     entity.SensorKindGPS,
		Values:   entity.Values{Latitude: &lat, Longitude: &lon},
	}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "gps-01").Return(nil, repository.ErrSensorNotFound)

	result, err := fx.service.Ingest(ctx, userID, input)
	assert.Nil(t, result)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestTelemetryService_CreateSensor_Duplicate(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.CreateSensorInput{SensorID: "bat-01", Kind: entity.SensorKindBattery}

	fx.sensorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(repository.ErrDuplicateSensor)

	sensor, err := fx.service.CreateSensor(ctx, userID, input)
	assert.Nil(t, sensor)
	requireErrorCode(t, err, "SENSOR_ALREADY_EXISTS")
}

func TestTelemetryService_GetSensor_HidesOtherUsers(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.sensorRepo.EXPECT().
		FindBySensorID(ctx, "bat-01").
		Return(&entity.Sensor{ID: uuid.New(), UserID: owner, SensorID: "bat-01"}, nil)

	sensor, err := fx.service.GetSensor(ctx, uuid.New(), "bat-01")
	assert.Nil(t, sensor)
	requireErrorCode(t, err, "SENSOR_NOT_FOUND")
}

func TestTelemetryService_ReportGPSStatus(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	sensor := &entity.Sensor{ID: uuid.New(), UserID: userID, SensorID: "gps-01", Kind: entity.SensorKindGPS}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "gps-01").Return(sensor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID, entity.AlertKindGPS), nil)
	fx.publisher.EXPECT().
		PublishAlert(ctx, mock.AnythingOfType("*service.AlertMessage")).
		Return(nil)

	alert, err := fx.service.ReportGPSStatus(ctx, "gps-01", usecase.GPSStatusDisconnected)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, entity.AlertKindGPS, alert.Kind)
	assert.Equal(t, "GPS sensor has lost connection", alert.Message)
	assert.Equal(t, "disconnected", alert.Data["status"])
}

func TestTelemetryService_ReportGPSStatus_OptedOut(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	userID := uuid.New()

	sensor := &entity.Sensor{ID: uuid.New(), UserID: userID, SensorID: "gps-01", Kind: entity.SensorKindGPS}

	fx.sensorRepo.EXPECT().FindBySensorID(ctx, "gps-01").Return(sensor, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)

	alert, err := fx.service.ReportGPSStatus(ctx, "gps-01", usecase.GPSStatusConnected)
	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestTelemetryService_ReportGPSStatus_UnknownStatus(t *testing.T) {
	fx := createTestTelemetryService(t)

	alert, err := fx.service.ReportGPSStatus(context.Background(), "gps-01", "sleeping")
	assert.Nil(t, alert)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestTelemetryService_DeleteHistoryEntry_NotFound(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.historyRepo.EXPECT().DeleteByID(ctx, id).Return(repository.ErrSnapshotNotFound)

	err := fx.service.DeleteHistoryEntry(ctx, id)
	requireErrorCode(t, err, "HISTORY_NOT_FOUND")
}

func TestTelemetryService_GeneratePairingQR(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	fx.pairingSvc.EXPECT().GeneratePairingQR("gps-01").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.GeneratePairingQR(ctx, "gps-01")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.GeneratePairingQR(ctx, "")
	requireErrorCode(t, err, "VALIDATION_FAILED")
}
