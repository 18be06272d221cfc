package services

import (
	"fmt"

	"github.com/benmeehan/proxity/internal/models"
	"github.com/benmeehan/proxity/pkg/location"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
)

// Target is a named location to measure the distance to.
type Target struct {
	Name     string
	Location location.Location
}

// DistanceService measures distances from a fixed origin location.
type DistanceService struct {
	origin   location.Location
	reportID string
	logger   zerolog.Logger
}

// NewDistanceService creates a new DistanceService for the given origin.
// Every report produced by the service carries the same report ID.
func NewDistanceService(origin location.Location, logger zerolog.Logger) *DistanceService {
	return &DistanceService{
		origin:   origin,
		reportID: uuid.New().String(),
		logger:   logger,
	}
}

// ReportID returns the ID shared by all reports of this service.
func (d *DistanceService) ReportID() string {
	return d.reportID
}

// ParseFixes parses raw NMEA sentences into fixes.
func (d *DistanceService) ParseFixes(sentences []string) ([]location.Fix, error) {
	fixes := make([]location.Fix, 0, len(sentences))
	for i, s := range sentences {
		fix, err := location.ParseFix(s)
		if err != nil {
			d.logger.Error().
				Err(err).
				Int("index", i).
				Msg("Failed to parse fix")
			return nil, fmt.Errorf("fix %d: %w", i, err)
		}
		fixes = append(fixes, fix)
	}
	return fixes, nil
}

// Measure computes one report per target followed by one report per fix.
// Fixes are named by their position, starting at fix-1.
func (d *DistanceService) Measure(targets []Target, fixes []location.Fix) []models.DistanceReport {
	reports := make([]models.DistanceReport, 0, len(targets)+len(fixes))

	for _, t := range targets {
		meters := d.origin.DistanceFrom(t.Location)
		reports = append(reports, d.report(t.Name, models.TargetKindLocation, meters,
			withinAccuracy(meters, d.origin.Accuracy, t.Location.Accuracy)))
	}

	for i, f := range fixes {
		meters := d.origin.DistanceFromFix(f)
		reports = append(reports, d.report(fmt.Sprintf("fix-%d", i+1), models.TargetKindFix, meters,
			withinAccuracy(meters, d.origin.Accuracy, 0)))
	}

	d.logger.Info().
		Str("report_id", d.reportID).
		Int("locations", len(targets)).
		Int("fixes", len(fixes)).
		Msg("Distances measured")
	return reports
}

// Collection returns the origin, the targets and the fixes as a GeoJSON
// feature collection. Target and fix features carry their report fields as
// properties.
func (d *DistanceService) Collection(targets []Target, fixes []location.Fix) *geojson.FeatureCollection {
	reports := d.Measure(targets, fixes)

	fc := geojson.NewFeatureCollection()
	origin := d.origin.Feature()
	origin.Properties["role"] = "origin"
	origin.Properties["report_id"] = d.reportID
	fc.Append(origin)

	for i, t := range targets {
		fc.Append(annotate(t.Location.Feature(), reports[i]))
	}
	for i, f := range fixes {
		feature := geojson.NewFeature(orb.Point{f.Longitude(), f.Latitude()})
		feature.Properties["altitude"] = f.Altitude()
		fc.Append(annotate(feature, reports[len(targets)+i]))
	}

	return fc
}

func (d *DistanceService) report(target, kind string, meters float64, within bool) models.DistanceReport {
	r := models.DistanceReport{
		ReportID:       d.reportID,
		Target:         target,
		Kind:           kind,
		Meters:         meters,
		WithinAccuracy: within,
	}

	d.logger.Debug().
		Str("target", target).
		Str("kind", kind).
		Float64("meters", meters).
		Bool("within_accuracy", within).
		Msg("Distance measured")
	return r
}

func annotate(f *geojson.Feature, r models.DistanceReport) *geojson.Feature {
	f.Properties["role"] = "target"
	f.Properties["name"] = r.Target
	f.Properties["kind"] = r.Kind
	f.Properties["meters"] = r.Meters
	f.Properties["within_accuracy"] = r.WithinAccuracy
	return f
}

// withinAccuracy reports whether the accuracy circles of both ends overlap.
// It is false as soon as one accuracy is unknown.
func withinAccuracy(meters float64, accuracies ...float64) bool {
	var sum float64
	for _, a := range accuracies {
		if a == location.UnknownAccuracy {
			return false
		}
		sum += a
	}
	return meters <= sum
}
