package location

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"googlemaps.github.io/maps"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// CoordinateFromPoint converts an orb point (longitude first) into a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Point returns the coordinate as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// LatLng returns the coordinate as an s2 LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// MapsLatLng returns the coordinate in the Google Maps client representation.
func (c Coordinate) MapsLatLng() maps.LatLng {
	return maps.LatLng{Lat: c.Latitude, Lng: c.Longitude}
}

// Valid reports whether both components are finite and inside their ranges.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
