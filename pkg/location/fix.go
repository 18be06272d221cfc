package location

import (
	"errors"
	"fmt"

	"github.com/adrianmo/go-nmea"
	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// ErrUnsupportedSentence is returned by ParseFix for NMEA sentences that carry no position fix.
var ErrUnsupportedSentence = errors.New("unsupported NMEA sentence")

// ErrNoFix is returned by ParseFix for GGA sentences reporting that the receiver has no position.
var ErrNoFix = errors.New("NMEA sentence carries no position fix")

// Fix is a position reported by a type this package does not own.
// Only latitude and longitude are used for distances.
type Fix interface {
	Latitude() float64  // Latitude in degrees
	Longitude() float64 // Longitude in degrees
	Altitude() float64  // Altitude in metres
}

// GGAFix adapts an NMEA GGA sentence to Fix.
type GGAFix struct {
	Sentence nmea.GGA
}

func (f GGAFix) Latitude() float64  { return f.Sentence.Latitude }
func (f GGAFix) Longitude() float64 { return f.Sentence.Longitude }
func (f GGAFix) Altitude() float64  { return f.Sentence.Altitude }

// ParseFix parses a raw NMEA sentence into a Fix. Only GGA sentences are
// accepted, regardless of the talker ID, and only when their fix quality is valid.
func ParseFix(sentence string) (Fix, error) {
	s, err := nmea.Parse(sentence)
	if err != nil {
		return nil, fmt.Errorf("failed to parse NMEA sentence: %w", err)
	}

	gga, ok := s.(nmea.GGA)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSentence, s.DataType())
	}
	if gga.FixQuality == nmea.Invalid || gga.FixQuality == "" {
		return nil, ErrNoFix
	}
	return GGAFix{Sentence: gga}, nil
}

// MercatorFix is a position in Web Mercator (EPSG:3857) metres plus height.
// The projection is not cached: Latitude and Longitude each transform the
// point, so a distance computation projects it twice.
type MercatorFix struct {
	X, Y float64 // Easting and northing in metres
	Z    float64 // Height in metres
}

var mercatorToLonLat = wgs84.Transform(wgs84.EPSG().Code(3857), wgs84.WGS84().LonLat())

func (f MercatorFix) lonLat() (float64, float64) {
	lon, lat, _ := mercatorToLonLat(f.X, f.Y, f.Z)
	return lon, lat
}

func (f MercatorFix) Latitude() float64 {
	_, lat := f.lonLat()
	return lat
}

func (f MercatorFix) Longitude() float64 {
	lon, _ := f.lonLat()
	return lon
}

func (f MercatorFix) Altitude() float64 { return f.Z }

// PointFix is an orb point with a height.
type PointFix struct {
	Point  orb.Point
	Height float64
}

func (f PointFix) Latitude() float64  { return f.Point.Lat() }
func (f PointFix) Longitude() float64 { return f.Point.Lon() }
func (f PointFix) Altitude() float64  { return f.Height }
