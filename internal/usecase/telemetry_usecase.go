// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// GPSStatus is an explicitly reported GPS connection state. Transitions are
// forwarded verbatim as gps alerts, never derived from staleness.
type GPSStatus string

const (
	GPSStatusConnected    GPSStatus = "connected"
	GPSStatusDisconnected GPSStatus = "disconnected"
)

// IngestInput is one telemetry update from a sensor. Values carries the raw
// fields; only those belonging to Kind are applied.
type IngestInput struct {
	SensorID string
	Kind     entity.SensorKind
	Values   entity.Values
}

// IngestResult is the synchronous outcome of an ingest. Alerts holds the
// preference-filtered alerts raised by this update; they are returned to the
// caller here and delivered asynchronously through the push path. The HTTP
// response never waits on delivery.
type IngestResult struct {
	Sensor       *entity.Sensor
	Alerts       []entity.AlertEvent
	HistorySaved bool
}

// CreateSensorInput registers a sensor explicitly ahead of its first update.
type CreateSensorInput struct {
	SensorID string
	Kind     entity.SensorKind
	Values   entity.Values
}

// HistoryQueryInput narrows a history lookup. SensorID and the time range
// are optional.
type HistoryQueryInput struct {
	SensorID string
	From     time.Time
	To       time.Time
}

// TelemetryUsecase is the telemetry-to-alert pipeline: sensor state,
// threshold evaluation, history retention and sensor bookkeeping.
type TelemetryUsecase interface {
	// Ingest applies one telemetry update, evaluates the alert decision
	// table and decides whether to persist a history snapshot. Concurrent
	// ingests for the same sensorId are serialized; different sensors
	// proceed in parallel. An unknown sensorId is auto-created and bound to
	// userID permanently.
	Ingest(ctx context.Context, userID uuid.UUID, input *IngestInput) (*IngestResult, error)

	// CreateSensor registers a sensor explicitly. Conflicts with an
	// existing sensorId are an error.
	CreateSensor(ctx context.Context, userID uuid.UUID, input *CreateSensorInput) (*entity.Sensor, error)

	// GetSensor returns the current state of one of the user's sensors.
	GetSensor(ctx context.Context, userID uuid.UUID, sensorID string) (*entity.Sensor, error)

	// ListSensors returns all sensors bound to the user.
	ListSensors(ctx context.Context, userID uuid.UUID) ([]*entity.Sensor, error)

	// DeleteSensor removes one of the user's sensors.
	DeleteSensor(ctx context.Context, userID uuid.UUID, sensorID string) error

	// ReportGPSStatus forwards an explicit GPS connection transition as a
	// gps alert. Returns the raised alert, or nil when the user has opted
	// out of gps alerts.
	ReportGPSStatus(ctx context.Context, sensorID string, status GPSStatus) (*entity.AlertEvent, error)

	// QueryHistory returns the user's snapshots, newest first.
	QueryHistory(ctx context.Context, userID uuid.UUID, q *HistoryQueryInput) ([]*entity.SensorSnapshot, error)

	// PurgeHistory deletes all snapshots for the user, returning the count.
	PurgeHistory(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteHistoryEntry deletes a single snapshot.
	DeleteHistoryEntry(ctx context.Context, id uuid.UUID) error

	// GeneratePairingQR renders the QR code the mobile app scans to claim
	// a sensor.
	GeneratePairingQR(ctx context.Context, sensorID string) ([]byte, error)
}
