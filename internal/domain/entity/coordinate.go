// Package entity contains the core business objects of the project.
package entity

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000.0

// Coordinate is an immutable geographic point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Degrees in [-90, 90].
	Longitude float64 `json:"longitude"` // Degrees in [-180, 180].
}

// Valid reports whether the coordinate lies within geographic bounds.
// Callers must validate input at the boundary; Distance assumes valid points.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Distance returns the great-circle distance between two coordinates in
// meters, computed with the haversine formula. Symmetric, zero at identity.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// SafeZone is a circular geofence owned by a user. A zone may be absent for
// a user, in which case no safe-zone evaluation applies.
type SafeZone struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"` // Non-negative.
}

// Outside reports whether p lies strictly outside the zone. A point at
// exactly the radius counts as inside.
func (z SafeZone) Outside(p Coordinate) bool {
	return Distance(p, z.Center) > z.RadiusMeters
}
