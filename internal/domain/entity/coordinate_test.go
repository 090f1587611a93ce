package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		expected bool
	}{
		{name: "origin", coord: Coordinate{0, 0}, expected: true},
		{name: "taipei", coord: Coordinate{25.0330, 121.5654}, expected: true},
		{name: "north pole", coord: Coordinate{90, 0}, expected: true},
		{name: "south pole", coord: Coordinate{-90, 0}, expected: true},
		{name: "date line", coord: Coordinate{0, 180}, expected: true},
		{name: "anti date line", coord: Coordinate{0, -180}, expected: true},
		{name: "latitude too high", coord: Coordinate{90.001, 0}, expected: false},
		{name: "latitude too low", coord: Coordinate{-90.001, 0}, expected: false},
		{name: "longitude too high", coord: Coordinate{0, 180.001}, expected: false},
		{name: "longitude too low", coord: Coordinate{0, -180.001}, expected: false},
		{name: "nan latitude", coord: Coordinate{math.NaN(), 0}, expected: false},
		{name: "nan longitude", coord: Coordinate{0, math.NaN()}, expected: false},
		{name: "infinite latitude", coord: Coordinate{math.Inf(1), 0}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.Valid())
		})
	}
}

func TestDistance_ZeroAtIdentity(t *testing.T) {
	p := Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	assert.Zero(t, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	b := Coordinate{Latitude: 24.1477, Longitude: 120.6736}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownValues(t *testing.T) {
	// One degree of latitude along a meridian is R*pi/180.
	a := Coordinate{Latitude: 0, Longitude: 0}
	b := Coordinate{Latitude: 1, Longitude: 0}
	assert.InDelta(t, 111194.93, Distance(a, b), 1.0)

	// Taipei Main Station to Taipei 101 is roughly 4 km.
	station := Coordinate{Latitude: 25.0478, Longitude: 121.5170}
	tower := Coordinate{Latitude: 25.0339, Longitude: 121.5645}
	d := Distance(station, tower)
	assert.Greater(t, d, 4500.0)
	assert.Less(t, d, 5500.0)
}

func TestSafeZone_Outside(t *testing.T) {
	center := Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	// A point roughly 111 m north of the center.
	near := Coordinate{Latitude: 25.0340, Longitude: 121.5654}

	zone := SafeZone{Center: center, RadiusMeters: 500}
	assert.False(t, zone.Outside(near))
	assert.False(t, zone.Outside(center))

	tight := SafeZone{Center: center, RadiusMeters: 50}
	assert.True(t, tight.Outside(near))

	// A point sitting exactly on the boundary counts as inside.
	boundary := SafeZone{Center: center, RadiusMeters: Distance(center, near)}
	assert.False(t, boundary.Outside(near))
}
