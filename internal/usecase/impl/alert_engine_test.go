package impl

import (
	"testing"
	"time"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	"bikesafe/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestEngine() *alertEngine {
	return newAlertEngine(thresholdsFromConfig(nil))
}

func alertKinds(events []entity.AlertEvent) []entity.AlertKind {
	kinds := make([]entity.AlertKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

func TestThresholdsFromConfig_Defaults(t *testing.T) {
	th := thresholdsFromConfig(nil)
	assert.Equal(t, 10*time.Minute, th.sensorFailureAfter)
	assert.Equal(t, 60.0, th.temperatureWarn)
	assert.Equal(t, 80.0, th.temperatureShutdown)
	assert.Equal(t, 10.0, th.batteryCritical)
	assert.Equal(t, 30*time.Second, th.historyInterval)
}

func TestThresholdsFromConfig_Overrides(t *testing.T) {
	th := thresholdsFromConfig(&config.TelemetryConfig{
		SensorFailureAfter: 5 * time.Minute,
		TemperatureWarn:    70,
		HistoryInterval:    time.Minute,
	})
	assert.Equal(t, 5*time.Minute, th.sensorFailureAfter)
	assert.Equal(t, 70.0, th.temperatureWarn)
	assert.Equal(t, 80.0, th.temperatureShutdown)
	assert.Equal(t, time.Minute, th.historyInterval)
}

func TestAlertEngine_TemperatureThresholds(t *testing.T) {
	engine := defaultTestEngine()
	now := time.Now()

	tests := []struct {
		name        string
		temperature float64
		expected    []entity.AlertKind
	}{
		{name: "normal", temperature: 50, expected: nil},
		{name: "at warn threshold", temperature: 60, expected: nil},
		{name: "above warn", temperature: 65, expected: []entity.AlertKind{entity.AlertKindTemperature}},
		{name: "above shutdown", temperature: 85, expected: []entity.AlertKind{entity.AlertKindTemperature, entity.AlertKindBattery}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := engine.evaluate(nil, entity.TemperatureReading{Temperature: tt.temperature}, nil, now)
			if tt.expected == nil {
				assert.Empty(t, events)

				return
			}
			assert.Equal(t, tt.expected, alertKinds(events))
		})
	}
}

func TestAlertEngine_ThermalShutdownCarriesReason(t *testing.T) {
	engine := defaultTestEngine()

	events := engine.evaluate(nil, entity.TemperatureReading{Temperature: 85}, nil, time.Now())
	require.Len(t, events, 2)
	assert.Equal(t, "High temperature detected: 85.0°C", events[0].Message)
	assert.Equal(t, entity.AlertKindBattery, events[1].Kind)
	assert.Equal(t, "thermal_shutdown", events[1].Data["reason"])
}

func TestAlertEngine_BatteryThreshold(t *testing.T) {
	engine := defaultTestEngine()
	now := time.Now()

	events := engine.evaluate(nil, entity.BatteryReading{Level: 50}, nil, now)
	assert.Empty(t, events)

	// The threshold itself is not critical yet.
	events = engine.evaluate(nil, entity.BatteryReading{Level: 10}, nil, now)
	assert.Empty(t, events)

	events = engine.evaluate(nil, entity.BatteryReading{Level: 9}, nil, now)
	require.Len(t, events, 1)
	assert.Equal(t, entity.AlertKindBattery, events[0].Kind)
	assert.Equal(t, "Battery is critically low: 9%", events[0].Message)
}

func TestAlertEngine_SensorFailure(t *testing.T) {
	engine := defaultTestEngine()
	now := time.Now()

	fresh := &entity.Sensor{SensorID: "sensor-1", LastUpdatedAt: now.Add(-5 * time.Minute)}
	events := engine.evaluate(fresh, entity.BatteryReading{Level: 50}, nil, now)
	assert.Empty(t, events)

	stale := &entity.Sensor{SensorID: "sensor-1", LastUpdatedAt: now.Add(-11 * time.Minute)}
	events = engine.evaluate(stale, entity.BatteryReading{Level: 50}, nil, now)
	require.Len(t, events, 1)
	assert.Equal(t, entity.AlertKindSensorFailure, events[0].Kind)
	assert.Equal(t, "Sensor sensor-1 has stopped responding", events[0].Message)
	assert.Equal(t, "sensor-1", events[0].Data["sensor_id"])
}

func TestAlertEngine_SensorFailureSkippedOnFirstContact(t *testing.T) {
	engine := defaultTestEngine()

	// No prior state means no gap to judge.
	events := engine.evaluate(nil, entity.BatteryReading{Level: 50}, nil, time.Now())
	assert.Empty(t, events)
}

func TestAlertEngine_StalenessCombinesWithMetricAlert(t *testing.T) {
	engine := defaultTestEngine()
	now := time.Now()

	stale := &entity.Sensor{SensorID: "sensor-1", LastUpdatedAt: now.Add(-15 * time.Minute)}
	events := engine.evaluate(stale, entity.BatteryReading{Level: 5}, nil, now)
	assert.Equal(t, []entity.AlertKind{entity.AlertKindSensorFailure, entity.AlertKindBattery}, alertKinds(events))
}

func TestAlertEngine_SafeZone(t *testing.T) {
	engine := defaultTestEngine()
	now := time.Now()
	reading := entity.GPSReading{Position: entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}}

	tests := []struct {
		name     string
		zone     *usecase.ZoneEvaluation
		expected int
	}{
		{name: "no evaluation", zone: nil, expected: 0},
		{name: "no zone configured", zone: &usecase.ZoneEvaluation{}, expected: 0},
		{name: "inside", zone: &usecase.ZoneEvaluation{Applicable: true, Outside: false, DistanceMeters: 100}, expected: 0},
		{name: "outside", zone: &usecase.ZoneEvaluation{Applicable: true, Outside: true, DistanceMeters: 900}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := engine.evaluate(nil, reading, tt.zone, now)
			require.Len(t, events, tt.expected)
			if tt.expected == 1 {
				assert.Equal(t, entity.AlertKindSafeZone, events[0].Kind)
				assert.Equal(t, "Bike has left the safe zone", events[0].Message)
				assert.Equal(t, "900.0", events[0].Data["distance_meters"])
			}
		})
	}
}

func TestShouldSaveHistory(t *testing.T) {
	now := time.Now()
	interval := 30 * time.Second

	assert.True(t, shouldSaveHistory(nil, now, interval))

	recent := now.Add(-29 * time.Second)
	assert.False(t, shouldSaveHistory(&recent, now, interval))

	due := now.Add(-30 * time.Second)
	assert.True(t, shouldSaveHistory(&due, now, interval))

	old := now.Add(-time.Hour)
	assert.True(t, shouldSaveHistory(&old, now, interval))
}
