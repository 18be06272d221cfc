package location

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature returns the location as a GeoJSON point feature. Accuracy and
// timestamp are stored as feature properties.
func (l Location) Feature() *geojson.Feature {
	f := geojson.NewFeature(l.Coordinate().Point())
	f.Properties[fieldAccuracy] = l.Accuracy
	f.Properties[fieldTimestamp] = l.Timestamp.Format(time.RFC3339Nano)
	return f
}

// FromFeature restores a location from a feature created by Feature.
func FromFeature(f *geojson.Feature) (Location, error) {
	if f == nil {
		return Location{}, &MalformedDataError{Err: fmt.Errorf("nil feature")}
	}

	p, ok := f.Geometry.(orb.Point)
	if !ok {
		return Location{}, &MalformedDataError{Field: "geometry", Err: fmt.Errorf("expected Point, got %T", f.Geometry)}
	}

	raw, ok := f.Properties[fieldAccuracy]
	if !ok {
		return Location{}, missingField(fieldAccuracy)
	}
	accuracy, ok := raw.(float64)
	if !ok {
		return Location{}, &MalformedDataError{Field: fieldAccuracy, Err: fmt.Errorf("expected number, got %T", raw)}
	}

	raw, ok = f.Properties[fieldTimestamp]
	if !ok {
		return Location{}, missingField(fieldTimestamp)
	}
	s, ok := raw.(string)
	if !ok {
		return Location{}, &MalformedDataError{Field: fieldTimestamp, Err: fmt.Errorf("expected string, got %T", raw)}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Location{}, &MalformedDataError{Field: fieldTimestamp, Err: err}
	}

	return newLocation(p.Lat(), p.Lon(), accuracy, ts), nil
}

// MarshalGeoJSON encodes the location as a GeoJSON feature.
func (l Location) MarshalGeoJSON() ([]byte, error) {
	return l.Feature().MarshalJSON()
}

// UnmarshalGeoJSON decodes a GeoJSON feature written by MarshalGeoJSON.
func UnmarshalGeoJSON(data []byte) (Location, error) {
	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return Location{}, &MalformedDataError{Err: err}
	}
	return FromFeature(f)
}
