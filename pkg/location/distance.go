package location

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadius is the mean radius of the earth in metres (IUGG).
const EarthRadius = 6371008.8

// DistanceFrom returns the great-circle distance in metres between two locations.
// Accuracy and timestamp are not taken into account.
func (l Location) DistanceFrom(other Location) float64 {
	return greatCircle(l.Coordinate().LatLng(), other.Coordinate().LatLng())
}

// DistanceFromFix returns the great-circle distance in metres between the
// location and a fix of another type. The altitude of the fix is ignored.
func (l Location) DistanceFromFix(other Fix) float64 {
	if other == nil {
		return math.NaN()
	}
	return greatCircle(l.Coordinate().LatLng(), s2.LatLngFromDegrees(other.Latitude(), other.Longitude()))
}

// greatCircle returns NaN if any component is NaN.
func greatCircle(a, b s2.LatLng) float64 {
	return a.Distance(b).Radians() * EarthRadius
}
