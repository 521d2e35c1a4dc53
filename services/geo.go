package services

import (
	"math"

	"rentloop-server/models"
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula.
func DistanceKm(a, b Point) float64 {
	const earthRadiusKm = 6371

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c
}

// FilterByRadius keeps the items within maxDistanceKm of center, inclusive.
// Items without coordinates are dropped, not an error. The input order is
// preserved.
func FilterByRadius(items []models.Item, center Point, maxDistanceKm float64) []models.Item {
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if !item.HasCoordinates() {
			continue
		}
		d := DistanceKm(center, Point{Lon: *item.Lon, Lat: *item.Lat})
		if d <= maxDistanceKm {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
