package utils

import (
	"errors"
	"fmt"
	"math"

	"github.com/benmeehan/proxity/pkg/file"
	"github.com/benmeehan/proxity/pkg/location"
)

// Output formats supported by the distance report writer.
const (
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

// Point is a named location in the configuration file. Latitude and
// longitude are required, accuracy is optional.
type Point struct {
	Name      string   `yaml:"name"`      // Label used in reports
	Latitude  *float64 `yaml:"latitude"`  // Latitude in degrees
	Longitude *float64 `yaml:"longitude"` // Longitude in degrees
	Accuracy  *float64 `yaml:"accuracy"`  // Accuracy in metres, unknown when omitted
}

// Location creates a location for the point, timestamped now. A missing
// coordinate becomes NaN, which makes the location invalid.
func (p Point) Location() location.Location {
	lat, lng := valueOrNaN(p.Latitude), valueOrNaN(p.Longitude)
	if p.Accuracy == nil {
		return location.FromLatLng(lat, lng)
	}
	return location.FromLatLngAccuracy(lat, lng, *p.Accuracy)
}

// check returns an error naming the first missing coordinate, or the point
// being out of range.
func (p Point) check() error {
	switch {
	case p.Latitude == nil:
		return errors.New("missing latitude")
	case p.Longitude == nil:
		return errors.New("missing longitude")
	case !p.Location().Valid():
		return errors.New("not a valid location")
	}
	return nil
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// Config represents the structure of the configuration file.
type Config struct {
	LogLevel string `yaml:"log_level"` // zerolog level name, defaults to info

	Origin  Point    `yaml:"origin"`  // Location all distances are measured from
	Targets []Point  `yaml:"targets"` // Locations to measure the distance to
	Fixes   []string `yaml:"fixes"`   // Raw NMEA GGA sentences to measure the distance to

	Output struct {
		Path   string `yaml:"path"`   // Output file, stdout when empty
		Format string `yaml:"format"` // json or geojson
	} `yaml:"output"`
}

// LoadConfig loads the YAML configuration from the specified file.
// It returns a pointer to the Config struct and an error if loading fails.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	var config Config
	err := fileClient.ReadYamlFile(filename, &config)
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", filename, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	switch c.Output.Format {
	case "":
		c.Output.Format = FormatJSON
	case FormatJSON, FormatGeoJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	if len(c.Targets) == 0 && len(c.Fixes) == 0 {
		return errors.New("no targets or fixes configured")
	}

	names := make([]string, 0, len(c.Targets))
	for i, t := range c.Targets {
		if t.Name == "" {
			return fmt.Errorf("target %d has no name", i)
		}
		if err := t.check(); err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
		names = append(names, t.Name)
	}
	if dups := Duplicates(names); len(dups) > 0 {
		return fmt.Errorf("target names must be unique, duplicated: %v", dups)
	}

	if err := c.Origin.check(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}

	return nil
}
