package entity

import (
	"time"

	"github.com/google/uuid"
)

// SensorKind identifies the physical sensor type.
type SensorKind string

const (
	SensorKindTemperature SensorKind = "temperature"
	SensorKindGPS         SensorKind = "gps"
	SensorKindBattery     SensorKind = "battery"
	SensorKindHumidity    SensorKind = "humidity"
)

// ValidSensorKind reports whether k is a known sensor kind.
func ValidSensorKind(k SensorKind) bool {
	switch k {
	case SensorKindTemperature, SensorKindGPS, SensorKindBattery, SensorKindHumidity:
		return true
	}

	return false
}

// Sensor is the authoritative current-value record for one physical sensor.
// A sensor is bound to the first user that writes it and never reassigned.
type Sensor struct {
	ID                 uuid.UUID  `json:"id"`                    // The Global Unique Identifier (GUID) for the record.
	UserID             uuid.UUID  `json:"user_id"`               // Owner; first-writer binding is permanent.
	SensorID           string     `json:"sensor_id"`             // Opaque hardware identifier from the device.
	Kind               SensorKind `json:"kind"`                  // Physical sensor type.
	Values             Values     `json:"values"`                // Last reported metric values.
	LastUpdatedAt      time.Time  `json:"last_updated_at"`       // Refreshed on every successful apply.
	LastHistorySavedAt *time.Time `json:"last_history_saved_at"` // Nil until the first snapshot; monotonically non-decreasing.
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Values holds the raw metric fields a sensor may report. Which fields are
// meaningful depends on the sensor kind; foreign fields are dropped at parse
// time, never stored.
type Values struct {
	Temperature  *float64 `json:"temperature,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	BatteryLevel *float64 `json:"battery_level,omitempty"`
	Humidity     *float64 `json:"humidity,omitempty"`
}

// Reading is the tagged variant over the metric payload of one ingest.
// Exactly one concrete type exists per sensor kind, so threshold evaluation
// is a single switch instead of repeated field-presence checks.
type Reading interface {
	// Kind returns the sensor kind this reading belongs to.
	Kind() SensorKind

	// Apply merges the reading into the stored values, touching only the
	// fields owned by its kind.
	Apply(v *Values)
}

// TemperatureReading carries a temperature sample in degrees Celsius.
type TemperatureReading struct {
	Temperature float64
}

func (TemperatureReading) Kind() SensorKind { return SensorKindTemperature }

func (r TemperatureReading) Apply(v *Values) {
	t := r.Temperature
	v.Temperature = &t
}

// GPSReading carries a position fix.
type GPSReading struct {
	Position Coordinate
}

func (GPSReading) Kind() SensorKind { return SensorKindGPS }

func (r GPSReading) Apply(v *Values) {
	lat, lon := r.Position.Latitude, r.Position.Longitude
	v.Latitude = &lat
	v.Longitude = &lon
}

// BatteryReading carries a battery charge percentage.
type BatteryReading struct {
	Level float64
}

func (BatteryReading) Kind() SensorKind { return SensorKindBattery }

func (r BatteryReading) Apply(v *Values) {
	l := r.Level
	v.BatteryLevel = &l
}

// HumidityReading carries a relative humidity percentage.
type HumidityReading struct {
	Humidity float64
}

func (HumidityReading) Kind() SensorKind { return SensorKindHumidity }

func (r HumidityReading) Apply(v *Values) {
	h := r.Humidity
	v.Humidity = &h
}
