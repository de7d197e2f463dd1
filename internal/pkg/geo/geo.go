package geo

import (
	"errors"
	"math"
)

var (
	// ErrNoOfficeLocation is returned when the employee's region has no
	// registered office coordinates. Attendance is blocked rather than
	// silently allowed.
	ErrNoOfficeLocation = errors.New("region has no registered office location")

	// ErrLocationRequired is returned when a physical check-in/out carries
	// no reported coordinates.
	ErrLocationRequired = errors.New("location is required for physical attendance")
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Haversine computes the great-circle distance between two coordinates in meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ValidateGeofence decides whether a reported coordinate falls inside the
// allowed radius around an office. Fails closed: a missing office location
// blocks attendance, it does not allow it.
func ValidateGeofence(reported *Point, office *Point, radiusMeters float64) (bool, float64, error) {
	if office == nil {
		return false, 0, ErrNoOfficeLocation
	}
	if reported == nil {
		return false, 0, ErrLocationRequired
	}

	distance := Haversine(reported.Latitude, reported.Longitude, office.Latitude, office.Longitude)
	return distance <= radiusMeters, distance, nil
}
