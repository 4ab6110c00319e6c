package domain

import "github.com/golang/geo/s2"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0088

// Immutable geographic coordinates (longitude, latitude).
// External routing APIs consume coordinates longitude-first; the
// CoordsToList ordering is part of that contract.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// DistanceKm returns the great-circle distance between two points in
// kilometers. Symmetric, never negative, and numerically stable for
// near-antipodal inputs.
func DistanceKm(a, b Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// Centroid returns the arithmetic mean of the given points.
// This is a planar average intended for map display only; it is not
// geodesically correct and must not feed distance math.
func Centroid(points []Coordinates) (Coordinates, bool) {
	if len(points) == 0 {
		return Coordinates{}, false
	}

	var sumLon, sumLat float64
	for _, p := range points {
		sumLon += p.Lon
		sumLat += p.Lat
	}

	n := float64(len(points))
	return Coordinates{Lon: sumLon / n, Lat: sumLat / n}, true
}
