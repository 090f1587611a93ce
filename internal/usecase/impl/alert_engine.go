package impl

import (
	"fmt"
	"strconv"
	"time"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	"bikesafe/internal/usecase"
	"bikesafe/internal/util"
)

const (
	// Pipeline defaults, used when the telemetry config leaves a field zero.
	defaultSensorFailureAfter  = 10 * time.Minute
	defaultTemperatureWarn     = 60.0
	defaultTemperatureShutdown = 80.0
	defaultBatteryCritical     = 10.0
	defaultHistoryInterval     = 30 * time.Second
)

// alertThresholds is the resolved threshold set the engine evaluates against.
type alertThresholds struct {
	sensorFailureAfter  time.Duration
	temperatureWarn     float64
	temperatureShutdown float64
	batteryCritical     float64
	historyInterval     time.Duration
}

func thresholdsFromConfig(cfg *config.TelemetryConfig) alertThresholds {
	t := alertThresholds{
		sensorFailureAfter:  defaultSensorFailureAfter,
		temperatureWarn:     defaultTemperatureWarn,
		temperatureShutdown: defaultTemperatureShutdown,
		batteryCritical:     defaultBatteryCritical,
		historyInterval:     defaultHistoryInterval,
	}
	if cfg == nil {
		return t
	}

	if cfg.SensorFailureAfter > 0 {
		t.sensorFailureAfter = cfg.SensorFailureAfter
	}
	if cfg.TemperatureWarn != 0 {
		t.temperatureWarn = cfg.TemperatureWarn
	}
	if cfg.TemperatureShutdown != 0 {
		t.temperatureShutdown = cfg.TemperatureShutdown
	}
	if cfg.BatteryCritical != 0 {
		t.batteryCritical = cfg.BatteryCritical
	}
	if cfg.HistoryInterval > 0 {
		t.historyInterval = cfg.HistoryInterval
	}

	return t
}

// alertEngine turns one telemetry update into its candidate alerts. The
// engine is pure: it never touches storage and never filters by preference,
// so every rule can be tested as a function of its inputs.
type alertEngine struct {
	thresholds alertThresholds
}

func newAlertEngine(thresholds alertThresholds) *alertEngine {
	return &alertEngine{thresholds: thresholds}
}

// evaluate runs the decision table for a single update. prev is the sensor
// state before the reading is applied; nil means the sensor was auto-created
// by this update and has no prior state to judge staleness against. zone is
// the safe-zone evaluation of the new fix, nil for readings without one.
// Candidates are ordered: staleness first, then the metric rules.
func (e *alertEngine) evaluate(prev *entity.Sensor, reading entity.Reading, zone *usecase.ZoneEvaluation, now time.Time) []entity.AlertEvent {
	var candidates []entity.AlertEvent

	// Staleness is judged on the gap the update just closed, before the
	// new timestamp takes effect.
	if prev != nil && now.Sub(prev.LastUpdatedAt) > e.thresholds.sensorFailureAfter {
		candidates = append(candidates, entity.AlertEvent{
			Kind:    entity.AlertKindSensorFailure,
			Message: fmt.Sprintf("Sensor %s has stopped responding", prev.SensorID),
			Data: map[string]string{
				"sensor_id": prev.SensorID,
				"stale_for": util.FormatDuration(now.Sub(prev.LastUpdatedAt)),
				"last_seen": prev.LastUpdatedAt.Format(time.RFC3339),
			},
			RaisedAt: now,
		})
	}

	switch r := reading.(type) {
	case entity.TemperatureReading:
		if r.Temperature > e.thresholds.temperatureWarn {
			candidates = append(candidates, entity.AlertEvent{
				Kind:    entity.AlertKindTemperature,
				Message: fmt.Sprintf("High temperature detected: %.1f°C", r.Temperature),
				Data: map[string]string{
					"temperature": strconv.FormatFloat(r.Temperature, 'f', 1, 64),
				},
				RaisedAt: now,
			})
		}
		// Extreme heat forces a battery shutdown, reported on the
		// battery channel in addition to the temperature warning.
		if r.Temperature > e.thresholds.temperatureShutdown {
			candidates = append(candidates, entity.AlertEvent{
				Kind:    entity.AlertKindBattery,
				Message: fmt.Sprintf("Battery shut down due to extreme heat: %.1f°C", r.Temperature),
				Data: map[string]string{
					"temperature": strconv.FormatFloat(r.Temperature, 'f', 1, 64),
					"reason":      "thermal_shutdown",
				},
				RaisedAt: now,
			})
		}

	case entity.BatteryReading:
		if r.Level < e.thresholds.batteryCritical {
			candidates = append(candidates, entity.AlertEvent{
				Kind:    entity.AlertKindBattery,
				Message: fmt.Sprintf("Battery is critically low: %.0f%%", r.Level),
				Data: map[string]string{
					"battery_level": strconv.FormatFloat(r.Level, 'f', 0, 64),
				},
				RaisedAt: now,
			})
		}

	case entity.GPSReading:
		if zone != nil && zone.Applicable && zone.Outside {
			candidates = append(candidates, entity.AlertEvent{
				Kind:    entity.AlertKindSafeZone,
				Message: "Bike has left the safe zone",
				Data: map[string]string{
					"latitude":        strconv.FormatFloat(r.Position.Latitude, 'f', 6, 64),
					"longitude":       strconv.FormatFloat(r.Position.Longitude, 'f', 6, 64),
					"distance_meters": strconv.FormatFloat(zone.DistanceMeters, 'f', 1, 64),
				},
				RaisedAt: now,
			})
		}
	}

	return candidates
}

// shouldSaveHistory reports whether a snapshot is due. The first update of a
// sensor always saves; afterwards saves are spaced at least the configured
// interval apart.
func shouldSaveHistory(lastSaved *time.Time, now time.Time, interval time.Duration) bool {
	if lastSaved == nil {
		return true
	}

	return now.Sub(*lastSaved) >= interval
}
