package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/domain/service"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
)

// sensorLocks serializes ingests per sensorId. Locks are keyed by the
// hardware identifier so updates for different sensors never contend.
type sensorLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSensorLocks() *sensorLocks {
	return &sensorLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *sensorLocks) lock(sensorID string) func() {
	l.mu.Lock()
	m, ok := l.locks[sensorID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sensorID] = m
	}
	l.mu.Unlock()

	m.Lock()

	return m.Unlock
}

type telemetryService struct {
	sensorRepo  repository.SensorRepository
	userRepo    repository.UserRepository
	historyRepo repository.HistoryRepository
	locationUC  usecase.LocationUsecase
	engine      *alertEngine
	publisher   service.AlertPublisher
	pairingSvc  service.PairingService
	locks       *sensorLocks
	logger      *slog.Logger

	// nowFunc is swapped in tests to control the clock.
	nowFunc func() time.Time
}

// NewTelemetryService creates the telemetry pipeline service.
func NewTelemetryService(
	sensorRepo repository.SensorRepository,
	userRepo repository.UserRepository,
	historyRepo repository.HistoryRepository,
	locationUC usecase.LocationUsecase,
	publisher service.AlertPublisher,
	pairingSvc service.PairingService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TelemetryUsecase {
	return &telemetryService{
		sensorRepo:  sensorRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		locationUC:  locationUC,
		engine:      newAlertEngine(thresholdsFromConfig(cfg.Telemetry)),
		publisher:   publisher,
		pairingSvc:  pairingSvc,
		locks:       newSensorLocks(),
		logger:      logger,
		nowFunc:     time.Now,
	}
}

// parseReading builds the typed reading for the sensor kind from the raw
// payload fields. Fields foreign to the kind are dropped here and never
// reach storage.
func parseReading(kind entity.SensorKind, values entity.Values) (entity.Reading, error) {
	switch kind {
	case entity.SensorKindTemperature:
		if values.Temperature == nil {
			return nil, domainerrors.ErrMissingReadingFields.WithDetails("temperature is required")
		}

		return entity.TemperatureReading{Temperature: *values.Temperature}, nil

	case entity.SensorKindGPS:
		if values.Latitude == nil || values.Longitude == nil {
			return nil, domainerrors.ErrMissingReadingFields.WithDetails("latitude and longitude are required")
		}
		pos := entity.Coordinate{Latitude: *values.Latitude, Longitude: *values.Longitude}
		if !pos.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}

		return entity.GPSReading{Position: pos}, nil

	case entity.SensorKindBattery:
		if values.BatteryLevel == nil {
			return nil, domainerrors.ErrMissingReadingFields.WithDetails("battery_level is required")
		}

		return entity.BatteryReading{Level: *values.BatteryLevel}, nil

	case entity.SensorKindHumidity:
		if values.Humidity == nil {
			return nil, domainerrors.ErrMissingReadingFields.WithDetails("humidity is required")
		}

		return entity.HumidityReading{Humidity: *values.Humidity}, nil

	default:
		return nil, domainerrors.ErrUnknownSensorKind.WithDetails(string(kind))
	}
}

// Ingest applies one telemetry update under the sensor's lock: load prior
// state, evaluate the decision table against it, apply the reading, persist,
// then throttle a history snapshot. Raised alerts are preference-filtered
// and handed to the async publisher; the returned result never waits on
// delivery.
func (s *telemetryService) Ingest(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestResult, error) {
	if !entity.ValidSensorKind(input.Kind) {
		return nil, domainerrors.ErrUnknownSensorKind.WithDetails(string(input.Kind))
	}

	unlock := s.locks.lock(input.SensorID)
	defer unlock()

	prev, err := s.sensorRepo.FindBySensorID(ctx, input.SensorID)
	if err != nil && !errors.Is(err, repository.ErrSensorNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sensor")
	}

	// First-writer binding: once a sensor belongs to a user, updates from
	// anyone else are rejected permanently.
	if prev != nil && prev.UserID != userID {
		return nil, domainerrors.ErrSensorOwnership
	}

	// The stored kind is authoritative; the payload kind only matters on
	// first contact, when it fixes the sensor's type.
	kind := input.Kind
	if prev != nil {
		kind = prev.Kind
	}

	reading, err := parseReading(kind, input.Values)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	now := s.nowFunc()

	// Update the realtime location first so the zone evaluation sees the
	// new fix. This write commits independently of the sensor state.
	var zone *usecase.ZoneEvaluation
	if gps, ok := reading.(entity.GPSReading); ok {
		zone, err = s.locationUC.UpdateLocation(ctx, userID, gps.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to update location: %w", err)
		}
	}

	candidates := s.engine.evaluate(prev, reading, zone, now)

	sensor := prev
	created := false
	if sensor == nil {
		created = true
		sensor = &entity.Sensor{
			ID:        uuid.New(),
			UserID:    userID,
			SensorID:  input.SensorID,
			Kind:      kind,
			CreatedAt: now,
		}
	}

	reading.Apply(&sensor.Values)
	sensor.LastUpdatedAt = now
	sensor.UpdatedAt = now

	historySaved := false
	if shouldSaveHistory(sensor.LastHistorySavedAt, now, s.engine.thresholds.historyInterval) {
		sensor.LastHistorySavedAt = &now
		historySaved = true
	}

	if created {
		err = s.sensorRepo.Create(ctx, sensor)
		if errors.Is(err, repository.ErrDuplicateSensor) || errors.Is(err, repository.ErrSensorOwnershipViolation) {
			return nil, domainerrors.ErrSensorOwnership
		}
	} else {
		err = s.sensorRepo.Update(ctx, sensor)
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to persist sensor state")
	}

	if historySaved {
		snapshot := &entity.SensorSnapshot{
			ID:        uuid.New(),
			UserID:    userID,
			SensorID:  sensor.SensorID,
			Kind:      sensor.Kind,
			Values:    sensor.Values,
			Timestamp: now,
		}
		if err := s.historyRepo.Append(ctx, snapshot); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to append history snapshot")
		}
	}

	// Preference filter is the only delivery gate. Repeats of the same
	// condition raise again on every update; deduplication is the
	// client's concern.
	var alerts []entity.AlertEvent
	for _, candidate := range candidates {
		if !user.WantsAlert(candidate.Kind) {
			continue
		}
		candidate.UserID = userID
		alerts = append(alerts, candidate)
	}

	s.publishAlerts(ctx, alerts)

	return &usecase.IngestResult{
		Sensor:       sensor,
		Alerts:       alerts,
		HistorySaved: historySaved,
	}, nil
}

// publishAlerts hands raised alerts to the async delivery path. Publishing
// is best effort: failures are logged and never fail the ingest.
func (s *telemetryService) publishAlerts(ctx context.Context, alerts []entity.AlertEvent) {
	for _, alert := range alerts {
		msg := &service.AlertMessage{
			UserID:   alert.UserID.String(),
			Kind:     string(alert.Kind),
			Message:  alert.Message,
			Data:     alert.Data,
			RaisedAt: alert.RaisedAt.Format(time.RFC3339),
		}
		if err := s.publisher.PublishAlert(ctx, msg); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish alert",
				slog.String("user_id", msg.UserID),
				slog.String("kind", msg.Kind),
				slog.Any("error", err))
		}
	}
}

// CreateSensor registers a sensor explicitly ahead of its first update.
func (s *telemetryService) CreateSensor(ctx context.Context, userID uuid.UUID, input *usecase.CreateSensorInput) (*entity.Sensor, error) {
	if !entity.ValidSensorKind(input.Kind) {
		return nil, domainerrors.ErrUnknownSensorKind.WithDetails(string(input.Kind))
	}

	unlock := s.locks.lock(input.SensorID)
	defer unlock()

	now := s.nowFunc()
	sensor := &entity.Sensor{
		ID:            uuid.New(),
		UserID:        userID,
		SensorID:      input.SensorID,
		Kind:          input.Kind,
		Values:        input.Values,
		LastUpdatedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.sensorRepo.Create(ctx, sensor); err != nil {
		if errors.Is(err, repository.ErrDuplicateSensor) {
			return nil, domainerrors.ErrSensorAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create sensor")
	}

	return sensor, nil
}

// GetSensor returns one of the user's sensors. Sensors bound to other users
// are reported as not found rather than leaking their existence.
func (s *telemetryService) GetSensor(ctx context.Context, userID uuid.UUID, sensorID string) (*entity.Sensor, error) {
	sensor, err := s.sensorRepo.FindBySensorID(ctx, sensorID)
	if err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return nil, domainerrors.ErrSensorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sensor")
	}

	if sensor.UserID != userID {
		return nil, domainerrors.ErrSensorNotFound
	}

	return sensor, nil
}

// ListSensors returns all sensors bound to the user.
func (s *telemetryService) ListSensors(ctx context.Context, userID uuid.UUID) ([]*entity.Sensor, error) {
	sensors, err := s.sensorRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sensors")
	}

	return sensors, nil
}

// DeleteSensor removes one of the user's sensors.
func (s *telemetryService) DeleteSensor(ctx context.Context, userID uuid.UUID, sensorID string) error {
	if _, err := s.GetSensor(ctx, userID, sensorID); err != nil {
		return err
	}

	if err := s.sensorRepo.Delete(ctx, sensorID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sensor")
	}

	return nil
}

// ReportGPSStatus forwards an explicit connection transition as a gps alert.
// Transitions are relayed verbatim; staleness never synthesizes one.
func (s *telemetryService) ReportGPSStatus(ctx context.Context, sensorID string, status usecase.GPSStatus) (*entity.AlertEvent, error) {
	var message string
	switch status {
	case usecase.GPSStatusConnected:
		message = "GPS sensor is back online"
	case usecase.GPSStatusDisconnected:
		message = "GPS sensor has lost connection"
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown gps status %q", status))
	}

	sensor, err := s.sensorRepo.FindBySensorID(ctx, sensorID)
	if err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return nil, domainerrors.ErrSensorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load sensor")
	}

	user, err := s.userRepo.FindByID(ctx, sensor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	if !user.WantsAlert(entity.AlertKindGPS) {
		return nil, nil
	}

	alert := entity.AlertEvent{
		UserID:  sensor.UserID,
		Kind:    entity.AlertKindGPS,
		Message: message,
		Data: map[string]string{
			"sensor_id": sensorID,
			"status":    string(status),
		},
		RaisedAt: s.nowFunc(),
	}

	s.publishAlerts(ctx, []entity.AlertEvent{alert})

	return &alert, nil
}

// QueryHistory returns the user's snapshots, newest first.
func (s *telemetryService) QueryHistory(ctx context.Context, userID uuid.UUID, q *usecase.HistoryQueryInput) ([]*entity.SensorSnapshot, error) {
	query := repository.HistoryQuery{UserID: userID}
	if q != nil {
		query.SensorID = q.SensorID
		query.From = q.From
		query.To = q.To
	}

	snapshots, err := s.historyRepo.Query(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query history")
	}

	return snapshots, nil
}

// PurgeHistory deletes all snapshots for the user.
func (s *telemetryService) PurgeHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.historyRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to purge history")
	}

	return count, nil
}

// DeleteHistoryEntry deletes a single snapshot.
func (s *telemetryService) DeleteHistoryEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.historyRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return domainerrors.ErrHistoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete history entry")
	}

	return nil
}

// GeneratePairingQR renders the QR code the mobile app scans to claim a
// sensor.
func (s *telemetryService) GeneratePairingQR(_ context.Context, sensorID string) ([]byte, error) {
	if sensorID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sensor_id is required")
	}

	png, err := s.pairingSvc.GeneratePairingQR(sensorID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pairing QR: %w", err)
	}

	return png, nil
}
