package services

import (
	"testing"

	"installation-route-service/internal/domain"
)

func TestNearestNeighborOrderFromStart(t *testing.T) {
	// Stops straight down a meridian; start north of all of them.
	stops := []domain.Stop{
		stopAt(3, -46.6333, -23.60),
		stopAt(1, -46.6333, -23.52),
		stopAt(2, -46.6333, -23.56),
	}
	start := &domain.Coordinates{Lon: -46.6333, Lat: -23.50}

	ordered := NearestNeighborOrder(stops, start)

	want := []int64{1, 2, 3}
	for i, s := range ordered {
		if s.Order.OrderID != want[i] {
			t.Fatalf("position %d = order %d, want %d", i, s.Order.OrderID, want[i])
		}
	}
}

func TestNearestNeighborOrderNoStart(t *testing.T) {
	// Without a start the first stop opens the route.
	stops := []domain.Stop{
		stopAt(1, -46.6333, -23.60),
		stopAt(2, -46.6333, -23.52),
		stopAt(3, -46.6333, -23.56),
	}

	ordered := NearestNeighborOrder(stops, nil)

	want := []int64{1, 3, 2}
	for i, s := range ordered {
		if s.Order.OrderID != want[i] {
			t.Fatalf("position %d = order %d, want %d", i, s.Order.OrderID, want[i])
		}
	}
}

func TestNearestNeighborOrderSmallInputs(t *testing.T) {
	if got := NearestNeighborOrder(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}

	one := []domain.Stop{stopAt(1, -46.6, -23.5)}
	if got := NearestNeighborOrder(one, nil); len(got) != 1 || got[0].Order.OrderID != 1 {
		t.Fatalf("single stop result = %v", got)
	}
}
