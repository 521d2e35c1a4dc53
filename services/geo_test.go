package services

import (
	"testing"

	"rentloop-server/models"

	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := []Point{
		{Lon: 0, Lat: 0},
		{Lon: -122.4194, Lat: 37.7749},
		{Lon: 151.2093, Lat: -33.8688},
	}
	for _, p := range points {
		require.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := Point{Lon: -122.4194, Lat: 37.7749} // San Francisco
	b := Point{Lon: -73.9857, Lat: 40.7484}  // New York

	require.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKmKnownDistance(t *testing.T) {
	sf := Point{Lon: -122.4194, Lat: 37.7749}
	ny := Point{Lon: -73.9857, Lat: 40.7484}

	// Roughly 4130 km between San Francisco and New York.
	d := DistanceKm(sf, ny)
	require.InDelta(t, 4130, d, 30)
}

func TestFilterByRadius(t *testing.T) {
	center := Point{Lon: -122.42, Lat: 37.77}

	near := models.Item{Title: "Mountain Bike", Lat: floatPtr(37.7749), Lon: floatPtr(-122.4194)}
	far := models.Item{Title: "Kayak", Lat: floatPtr(40.7484), Lon: floatPtr(-73.9857)}
	noCoords := models.Item{Title: "Drill"}

	items := []models.Item{near, far, noCoords}

	filtered := FilterByRadius(items, center, 1)
	require.Len(t, filtered, 1)
	require.Equal(t, "Mountain Bike", filtered[0].Title)

	// The bike sits about 0.55 km from the center; a 0.01 km radius drops it.
	filtered = FilterByRadius(items, center, 0.01)
	require.Empty(t, filtered)
}

func TestFilterByRadiusInclusiveBoundary(t *testing.T) {
	center := Point{Lon: 0, Lat: 0}
	item := models.Item{Title: "On The Line", Lat: floatPtr(0), Lon: floatPtr(0)}

	// Distance is exactly zero; a zero radius must still include it.
	filtered := FilterByRadius([]models.Item{item}, center, 0)
	require.Len(t, filtered, 1)
}

func TestFilterByRadiusPreservesOrder(t *testing.T) {
	center := Point{Lon: 0, Lat: 0}
	items := []models.Item{
		{Title: "b", Lat: floatPtr(0.01), Lon: floatPtr(0)},
		{Title: "a", Lat: floatPtr(0.001), Lon: floatPtr(0)},
		{Title: "c", Lat: floatPtr(0.02), Lon: floatPtr(0)},
	}

	filtered := FilterByRadius(items, center, 100)
	require.Len(t, filtered, 3)
	require.Equal(t, "b", filtered[0].Title)
	require.Equal(t, "a", filtered[1].Title)
	require.Equal(t, "c", filtered[2].Title)
}
