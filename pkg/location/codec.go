package location

import (
	"encoding/json"
	"errors"
	"time"

	"gopkg.in/yaml.v3"
)

// Field names shared by every encoding of a Location.
const (
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldAccuracy  = "accuracy"
	fieldTimestamp = "timestamp"
)

// encodedLocation is the on-the-wire layout of a Location for JSON and YAML.
type encodedLocation struct {
	Latitude  float64   `json:"latitude" yaml:"latitude"`
	Longitude float64   `json:"longitude" yaml:"longitude"`
	Accuracy  float64   `json:"accuracy" yaml:"accuracy"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// decodedLocation uses pointers so that missing fields can be told apart from zero values.
type decodedLocation struct {
	Latitude  *float64   `json:"latitude" yaml:"latitude"`
	Longitude *float64   `json:"longitude" yaml:"longitude"`
	Accuracy  *float64   `json:"accuracy" yaml:"accuracy"`
	Timestamp *time.Time `json:"timestamp" yaml:"timestamp"`
}

func (l Location) encoded() encodedLocation {
	return encodedLocation{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		Timestamp: l.Timestamp,
	}
}

func (d decodedLocation) location() (Location, error) {
	switch {
	case d.Latitude == nil:
		return Location{}, missingField(fieldLatitude)
	case d.Longitude == nil:
		return Location{}, missingField(fieldLongitude)
	case d.Accuracy == nil:
		return Location{}, missingField(fieldAccuracy)
	case d.Timestamp == nil:
		return Location{}, missingField(fieldTimestamp)
	}
	return newLocation(*d.Latitude, *d.Longitude, *d.Accuracy, *d.Timestamp), nil
}

// MarshalJSON encodes the location as a JSON object. The timestamp is written
// in RFC 3339 format with nanosecond precision.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.encoded())
}

// UnmarshalJSON decodes a JSON object written by MarshalJSON. All four fields
// are required.
func (l *Location) UnmarshalJSON(data []byte) error {
	var d decodedLocation
	if err := json.Unmarshal(data, &d); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &MalformedDataError{Field: typeErr.Field, Err: err}
		}
		return &MalformedDataError{Err: err}
	}

	decoded, err := d.location()
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Location) MarshalYAML() (interface{}, error) {
	return l.encoded(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Location) UnmarshalYAML(value *yaml.Node) error {
	var d decodedLocation
	if err := value.Decode(&d); err != nil {
		return &MalformedDataError{Err: err}
	}

	decoded, err := d.location()
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}
