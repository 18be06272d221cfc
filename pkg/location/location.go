package location

import (
	"math"
	"time"

	"googlemaps.github.io/maps"
)

// UnknownAccuracy marks a location whose horizontal accuracy is not known.
const UnknownAccuracy float64 = -1

// Location represents an outdoor location of a device.
//
// Latitude and longitude are not range checked when a Location is created, so
// values outside [-90, 90] and [-180, 180] are accepted as given. Use Valid to
// check a value strictly.
type Location struct {
	Latitude  float64   // Latitude in degrees
	Longitude float64   // Longitude in degrees
	Accuracy  float64   // Estimated horizontal accuracy in metres, or UnknownAccuracy
	Timestamp time.Time // Time at which the location was determined
}

// FromCoordinate creates a new Location at the given coordinate with unknown accuracy.
func FromCoordinate(c Coordinate) Location {
	return newLocation(c.Latitude, c.Longitude, UnknownAccuracy, time.Now())
}

// FromLatLng creates a new Location from latitude and longitude with unknown accuracy.
func FromLatLng(lat, lng float64) Location {
	return newLocation(lat, lng, UnknownAccuracy, time.Now())
}

// FromLatLngAccuracy creates a new Location with an explicit accuracy in metres.
func FromLatLngAccuracy(lat, lng, accuracy float64) Location {
	return newLocation(lat, lng, accuracy, time.Now())
}

// FromGeolocation creates a new Location from a Google Maps Geolocation API result.
func FromGeolocation(r maps.GeolocationResult) Location {
	return newLocation(r.Location.Lat, r.Location.Lng, r.Accuracy, time.Now())
}

// newLocation is the only constructor taking a timestamp. The decoders use it
// to restore a previously encoded value.
func newLocation(lat, lng, accuracy float64, ts time.Time) Location {
	return Location{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  accuracy,
		Timestamp: ts,
	}
}

// Coordinate returns the latitude/longitude pair of the location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// HasAccuracy reports whether the location carries a usable accuracy.
// UnknownAccuracy, other negative values and NaN all report false.
func (l Location) HasAccuracy() bool {
	return l.Accuracy >= 0
}

// Valid reports whether the location holds finite in-range coordinates and
// an accuracy that is either unknown or non-negative.
func (l Location) Valid() bool {
	if !l.Coordinate().Valid() {
		return false
	}
	if math.IsNaN(l.Accuracy) || math.IsInf(l.Accuracy, 0) {
		return false
	}
	return l.Accuracy == UnknownAccuracy || l.Accuracy >= 0
}

// Copy returns an independent copy of the location.
func (l Location) Copy() Location {
	return newLocation(l.Latitude, l.Longitude, l.Accuracy, l.Timestamp)
}

// Equal reports whether both locations hold the same coordinate, accuracy and
// timestamp. Timestamps are compared as instants, so the same moment in two
// time zones is equal. A location with a NaN field is not equal to itself.
func (l Location) Equal(other Location) bool {
	return l.Latitude == other.Latitude &&
		l.Longitude == other.Longitude &&
		l.Accuracy == other.Accuracy &&
		l.Timestamp.Equal(other.Timestamp)
}
