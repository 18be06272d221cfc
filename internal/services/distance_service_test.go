package services_test

import (
	"bytes"
	"testing"

	"github.com/benmeehan/proxity/internal/models"
	"github.com/benmeehan/proxity/internal/services"
	"github.com/benmeehan/proxity/pkg/location"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ggaSentence = "$GPGGA,034225.077,3356.4650,S,15124.5567,E,1,03,9.7,-25.0,M,21.0,M,,0000*51"

// TestDistanceService_Measure tests reports for locations and fixes.
func TestDistanceService_Measure(t *testing.T) {
	// Setup
	origin := location.FromLatLngAccuracy(52.5200, 13.4050, 50)
	d := services.NewDistanceService(origin, zerolog.Nop())

	nearby := location.FromLatLngAccuracy(52.5203, 13.4050, 10)
	paris := location.FromLatLngAccuracy(48.8566, 2.3522, 100)
	unknown := location.FromLatLng(52.5200, 13.4050)
	fix := location.PointFix{Point: orb.Point{13.4050, 52.5201}, Height: 80}

	// Execute
	reports := d.Measure([]services.Target{
		{Name: "nearby", Location: nearby},
		{Name: "paris", Location: paris},
		{Name: "unknown", Location: unknown},
	}, []location.Fix{fix})

	// Assert
	require.Len(t, reports, 4)
	for _, r := range reports {
		assert.Equal(t, d.ReportID(), r.ReportID)
	}
	_, err := uuid.Parse(d.ReportID())
	assert.NoError(t, err)

	assert.Equal(t, "nearby", reports[0].Target)
	assert.Equal(t, models.TargetKindLocation, reports[0].Kind)
	assert.InDelta(t, origin.DistanceFrom(nearby), reports[0].Meters, 1e-9)
	assert.True(t, reports[0].WithinAccuracy)

	assert.Equal(t, "paris", reports[1].Target)
	assert.InDelta(t, 878000, reports[1].Meters, 8780)
	assert.False(t, reports[1].WithinAccuracy)

	assert.Equal(t, "unknown", reports[2].Target)
	assert.InDelta(t, 0, reports[2].Meters, 1e-6)
	assert.False(t, reports[2].WithinAccuracy, "unknown accuracy is never within accuracy")

	assert.Equal(t, "fix-1", reports[3].Target)
	assert.Equal(t, models.TargetKindFix, reports[3].Kind)
	assert.InDelta(t, origin.DistanceFromFix(fix), reports[3].Meters, 1e-9)
	assert.True(t, reports[3].WithinAccuracy)
}

// TestDistanceService_Measure_UnknownOrigin tests that an origin without accuracy never matches.
func TestDistanceService_Measure_UnknownOrigin(t *testing.T) {
	origin := location.FromLatLng(0, 0)
	d := services.NewDistanceService(origin, zerolog.Nop())

	reports := d.Measure([]services.Target{{Name: "same", Location: location.FromLatLngAccuracy(0, 0, 5)}}, nil)

	require.Len(t, reports, 1)
	assert.InDelta(t, 0, reports[0].Meters, 1e-6)
	assert.False(t, reports[0].WithinAccuracy)
}

// TestDistanceService_ParseFixes tests parsing of NMEA sentences.
func TestDistanceService_ParseFixes(t *testing.T) {
	var buf bytes.Buffer
	d := services.NewDistanceService(location.FromLatLng(0, 0), zerolog.New(&buf))

	fixes, err := d.ParseFixes([]string{ggaSentence})
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, -25.0, fixes[0].Altitude())

	fixes, err = d.ParseFixes([]string{ggaSentence, "$GPXXX,broken*00"})
	assert.Nil(t, fixes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fix 1")
	assert.Contains(t, buf.String(), "Failed to parse fix")

	fixes, err = d.ParseFixes([]string{"$GPGGA,123519,,,,,0,00,,,M,,M,,*6B"})
	assert.Nil(t, fixes)
	assert.ErrorIs(t, err, location.ErrNoFix)
}

// TestDistanceService_Collection tests the GeoJSON feature collection.
func TestDistanceService_Collection(t *testing.T) {
	origin := location.FromLatLngAccuracy(52.5200, 13.4050, 50)
	d := services.NewDistanceService(origin, zerolog.Nop())
	fix, err := location.ParseFix(ggaSentence)
	require.NoError(t, err)

	fc := d.Collection([]services.Target{
		{Name: "paris", Location: location.FromLatLng(48.8566, 2.3522)},
	}, []location.Fix{fix})

	require.Len(t, fc.Features, 3)

	restored, err := location.FromFeature(fc.Features[0])
	require.NoError(t, err)
	assert.True(t, origin.Equal(restored))
	assert.Equal(t, "origin", fc.Features[0].Properties["role"])
	assert.Equal(t, d.ReportID(), fc.Features[0].Properties["report_id"])

	assert.Equal(t, "paris", fc.Features[1].Properties["name"])
	assert.Equal(t, models.TargetKindLocation, fc.Features[1].Properties["kind"])
	assert.Equal(t, orb.Point{2.3522, 48.8566}, fc.Features[1].Geometry)

	assert.Equal(t, "fix-1", fc.Features[2].Properties["name"])
	assert.Equal(t, -25.0, fc.Features[2].Properties["altitude"])
	assert.Equal(t, origin.DistanceFromFix(fix), fc.Features[2].Properties["meters"])

	_, err = fc.MarshalJSON()
	assert.NoError(t, err)
}
