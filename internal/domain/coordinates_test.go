package domain

import (
	"math"
	"testing"
)

var (
	saoPaulo     = Coordinates{Lon: -46.6333, Lat: -23.5505}
	rioDeJaneiro = Coordinates{Lon: -43.1729, Lat: -22.9068}
)

func TestDistanceKmSymmetric(t *testing.T) {
	ab := DistanceKm(saoPaulo, rioDeJaneiro)
	ba := DistanceKm(rioDeJaneiro, saoPaulo)

	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceKmIdenticalPoints(t *testing.T) {
	if d := DistanceKm(saoPaulo, saoPaulo); d >= 0.001 {
		t.Fatalf("distance for identical points = %v, want < 0.001", d)
	}
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Sao Paulo to Rio de Janeiro is roughly 360 km great-circle.
	d := DistanceKm(saoPaulo, rioDeJaneiro)
	if d < 340 || d > 380 {
		t.Fatalf("SP-Rio distance = %v km, want ~360", d)
	}
}

func TestDistanceKmNeverNegative(t *testing.T) {
	pairs := []Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 180, Lat: 0},
		{Lon: -180, Lat: 0},
		{Lon: 0, Lat: 90},
		{Lon: 0, Lat: -90},
		saoPaulo,
	}

	for _, a := range pairs {
		for _, b := range pairs {
			if d := DistanceKm(a, b); d < 0 {
				t.Fatalf("DistanceKm(%v, %v) = %v, want >= 0", a, b, d)
			}
		}
	}
}

func TestCentroid(t *testing.T) {
	points := []Coordinates{
		{Lon: -46, Lat: -23},
		{Lon: -44, Lat: -21},
	}

	c, ok := Centroid(points)
	if !ok {
		t.Fatal("expected centroid for non-empty input")
	}
	if c.Lon != -45 || c.Lat != -22 {
		t.Fatalf("centroid = %+v, want (-45, -22)", c)
	}
}

func TestCentroidEmpty(t *testing.T) {
	if _, ok := Centroid(nil); ok {
		t.Fatal("expected no centroid for empty input")
	}
}

func TestCoordsToListIsLonFirst(t *testing.T) {
	l := saoPaulo.CoordsToList()
	if len(l) != 2 || l[0] != saoPaulo.Lon || l[1] != saoPaulo.Lat {
		t.Fatalf("CoordsToList = %v, want [lon, lat]", l)
	}
}
